package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/tzclock"
)

func validConfig() *domain.SlotConfig {
	return &domain.SlotConfig{
		StartDate:             "2026-06-01",
		EndDate:               "2026-06-07",
		StartTime:             "09:00",
		EndTime:               "17:00",
		TimeZone:              "Europe/Moscow",
		SlotDurationMinutes:   30,
		BreakDurationMinutes:  15,
		BufferDurationMinutes: 45,
	}
}

func zones() ZoneChecker {
	return tzclock.NewFixed(time.Time{}, "Europe/Moscow")
}

func fields(errs []domain.ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidate_ValidConfig(t *testing.T) {
	errs := Validate(validConfig(), zones())
	require.Empty(t, errs)
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.StartDate = "2026-06-07"
	cfg.EndDate = "2026-06-01"
	cfg.TimeZone = "Mars/Olympus"
	cfg.BufferDurationMinutes = 2000

	errs := Validate(cfg, zones())

	// Все три нарушения возвращаются одним списком, а не по одному
	require.Len(t, errs, 3)
	require.Contains(t, fields(errs), "endDate")
	require.Contains(t, fields(errs), "timeZone")
	require.Contains(t, fields(errs), "bufferDuration")
}

func TestValidate_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *domain.SlotConfig)
		wantField string
	}{
		{
			name:      "missing start date",
			mutate:    func(cfg *domain.SlotConfig) { cfg.StartDate = "" },
			wantField: "startDate",
		},
		{
			name:      "malformed end date",
			mutate:    func(cfg *domain.SlotConfig) { cfg.EndDate = "07-06-2026" },
			wantField: "endDate",
		},
		{
			name:      "end date before start date",
			mutate:    func(cfg *domain.SlotConfig) { cfg.EndDate = "2026-05-31" },
			wantField: "endDate",
		},
		{
			name:      "malformed start time",
			mutate:    func(cfg *domain.SlotConfig) { cfg.StartTime = "9am" },
			wantField: "startTime",
		},
		{
			name:      "end time equals start time",
			mutate:    func(cfg *domain.SlotConfig) { cfg.EndTime = cfg.StartTime },
			wantField: "endTime",
		},
		{
			name:      "unknown timezone",
			mutate:    func(cfg *domain.SlotConfig) { cfg.TimeZone = "Mars/Olympus" },
			wantField: "timeZone",
		},
		{
			name:      "missing timezone",
			mutate:    func(cfg *domain.SlotConfig) { cfg.TimeZone = "" },
			wantField: "timeZone",
		},
		{
			name:      "slot duration too small",
			mutate:    func(cfg *domain.SlotConfig) { cfg.SlotDurationMinutes = 0 },
			wantField: "slotDuration",
		},
		{
			name:      "slot duration too large",
			mutate:    func(cfg *domain.SlotConfig) { cfg.SlotDurationMinutes = 481 },
			wantField: "slotDuration",
		},
		{
			name:      "negative break duration",
			mutate:    func(cfg *domain.SlotConfig) { cfg.BreakDurationMinutes = -1 },
			wantField: "breakDuration",
		},
		{
			name:      "break duration too large",
			mutate:    func(cfg *domain.SlotConfig) { cfg.BreakDurationMinutes = 121 },
			wantField: "breakDuration",
		},
		{
			name:      "buffer duration too large",
			mutate:    func(cfg *domain.SlotConfig) { cfg.BufferDurationMinutes = 1441 },
			wantField: "bufferDuration",
		},
		{
			name: "daily window cannot fit a slot",
			mutate: func(cfg *domain.SlotConfig) {
				cfg.StartTime = "09:00"
				cfg.EndTime = "09:20"
				cfg.SlotDurationMinutes = 30
			},
			wantField: "slotDuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := Validate(cfg, zones())
			require.NotEmpty(t, errs)
			require.Contains(t, fields(errs), tt.wantField)
		})
	}
}

// Оба пути валидации построены на одном наборе проверок: конфигурация,
// отклонённая накапливающим путём, отклоняется и fail-fast путём
func TestValidateStrict_AgreesWithValidate(t *testing.T) {
	require.NoError(t, ValidateStrict(validConfig(), zones()))

	cfg := validConfig()
	cfg.EndDate = "2026-05-31"
	cfg.SlotDurationMinutes = 0

	errs := Validate(cfg, zones())
	require.NotEmpty(t, errs)

	err := ValidateStrict(cfg, zones())
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), errs[0].String())
}
