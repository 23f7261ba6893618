package slot_stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/tzclock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFilter struct {
	resp    *filterSlots.Response
	err     error
	lastReq *filterSlots.Request
}

func (f *fakeFilter) Execute(_ context.Context, req *filterSlots.Request) (*filterSlots.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestExecute_ComputesStatsOverFilteredCollection(t *testing.T) {
	day := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	filter := &fakeFilter{resp: &filterSlots.Response{
		Slots: []domain.Slot{
			slotAt(day, true),
			slotAt(day.Add(time.Hour), false),
		},
		TimeZone: "UTC",
	}}
	authority := tzclock.NewFixed(day)

	uc := NewUseCase(filter, authority, nopLogger{})

	req := &Request{Filter: filterSlots.Options{TimeZone: "UTC", AvailableOnly: false}}
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, "UTC", resp.TimeZone)
	require.Equal(t, 2, resp.Stats.Total)
	require.Equal(t, 1, resp.Stats.Available)
	require.Equal(t, 50, resp.Stats.AvailabilityRatePercent)

	// Опции фильтрации передаются пайплайну без изменений
	require.NotNil(t, filter.lastReq)
	require.Equal(t, req.Filter, filter.lastReq.Options)
}

func TestExecute_EmptyCollectionGivesZeroStats(t *testing.T) {
	filter := &fakeFilter{resp: &filterSlots.Response{TimeZone: "Europe/Moscow"}}
	authority := tzclock.NewFixed(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))

	uc := NewUseCase(filter, authority, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Equal(t, "Europe/Moscow", resp.TimeZone)
	require.Zero(t, resp.Stats.Total)
	require.Nil(t, resp.Stats.DateRange)
}

func TestExecute_FilterFailurePropagates(t *testing.T) {
	filter := &fakeFilter{err: errors.New("connection reset")}
	authority := tzclock.NewFixed(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))

	uc := NewUseCase(filter, authority, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInternal)
}
