package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/blob"
	scheduleStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/tzclock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	store := scheduleStore.NewStore(blob.NewMemory(), "test", nopLogger{})
	zones := tzclock.NewFixed(time.Time{}, "Europe/Moscow")
	return NewService(store, zones, nopLogger{})
}

func validRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:                7,
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

func TestService_UpdateAndGetConfig(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	saved, validationErrs, err := svc.UpdateConfig(ctx, validRequest())
	require.NoError(t, err)
	require.Empty(t, validationErrs)
	require.Equal(t, "2026-06-01", saved.StartDate)

	got, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestService_UpdateConfigReturnsAllViolations(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRequest()
	req.EndDate = "2026-05-31"
	req.TimeZone = "Mars/Olympus"
	req.SlotDurationMinutes = 0

	saved, validationErrs, err := svc.UpdateConfig(ctx, req)
	require.NoError(t, err)
	require.Nil(t, saved)
	require.Len(t, validationErrs, 3)

	fields := make([]string, len(validationErrs))
	for i, e := range validationErrs {
		fields[i] = e.Field
	}
	require.Contains(t, fields, "endDate")
	require.Contains(t, fields, "timeZone")
	require.Contains(t, fields, "slotDuration")

	// Невалидная конфигурация не сохраняется
	_, err = svc.GetConfig(ctx)
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestService_GetConfigMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetConfig(context.Background())
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestService_ClearRemovesConfig(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, validationErrs, err := svc.UpdateConfig(ctx, validRequest())
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	require.NoError(t, svc.Clear(ctx, 7))

	_, err = svc.GetConfig(ctx)
	require.ErrorIs(t, err, ErrConfigNotFound)
}
