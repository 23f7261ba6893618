package tzclock

import (
	"fmt"
	"time"
)

// Fixed детерминированная реализация Authority для тестов:
// фиксированный момент "сейчас" и явно заданный набор таймзон
type Fixed struct {
	Instant time.Time
	Zones   map[string]*time.Location
}

// NewFixed создает Fixed authority с указанным моментом времени
// и минимальным набором зон (UTC всегда присутствует)
func NewFixed(instant time.Time, zones ...string) *Fixed {
	f := &Fixed{
		Instant: instant,
		Zones:   map[string]*time.Location{"UTC": time.UTC},
	}
	for _, name := range zones {
		if loc, err := time.LoadLocation(name); err == nil {
			f.Zones[name] = loc
		}
	}
	return f
}

// Now возвращает фиксированный момент времени
func (f *Fixed) Now() time.Time {
	return f.Instant
}

// ZoneExists проверяет зону по таблице Fixed
func (f *Fixed) ZoneExists(name string) bool {
	_, ok := f.Zones[name]
	return ok
}

// Location возвращает зону из таблицы Fixed
func (f *Fixed) Location(name string) (*time.Location, error) {
	loc, ok := f.Zones[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

// ToZone возвращает момент времени в локальном представлении зоны
func (f *Fixed) ToZone(t time.Time, name string) (time.Time, error) {
	loc, err := f.Location(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// Offset возвращает смещение зоны от UTC в момент t
func (f *Fixed) Offset(t time.Time, name string) (time.Duration, error) {
	loc, err := f.Location(name)
	if err != nil {
		return 0, err
	}
	_, seconds := t.In(loc).Zone()
	return time.Duration(seconds) * time.Second, nil
}
