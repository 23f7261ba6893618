// Package tzclock предоставляет единую точку доступа ко времени и таймзонам.
//
// Все zone-aware операции ядра проходят через интерфейс Authority, поэтому
// в тестах время и набор таймзон подменяются детерминированной реализацией.
package tzclock

import (
	"errors"
	"fmt"
	"time"
	// Встраиваем базу таймзон IANA, чтобы разрешение зон не зависело
	// от наличия tzdata на хосте
	_ "time/tzdata"
)

// ErrUnknownZone возвращается, когда идентификатор таймзоны не найден в базе IANA
var ErrUnknownZone = errors.New("tzclock: unknown timezone")

// Authority источник текущего времени и операций над таймзонами
type Authority interface {
	// Now возвращает текущий момент времени
	Now() time.Time

	// ZoneExists проверяет, что идентификатор зоны разрешим в базе IANA
	ZoneExists(name string) bool

	// Location возвращает *time.Location для идентификатора зоны
	Location(name string) (*time.Location, error)

	// ToZone возвращает тот же момент времени в локальном представлении зоны
	ToZone(t time.Time, name string) (time.Time, error)

	// Offset возвращает смещение зоны от UTC в указанный момент времени
	Offset(t time.Time, name string) (time.Duration, error)
}

// System реализация Authority поверх системных часов и time.LoadLocation
type System struct{}

// NewSystem создает системный Authority
func NewSystem() *System {
	return &System{}
}

// Now возвращает текущее время
func (s *System) Now() time.Time {
	return time.Now()
}

// ZoneExists проверяет идентификатор зоны по базе IANA
func (s *System) ZoneExists(name string) bool {
	_, err := s.Location(name)
	return err == nil
}

// Location возвращает *time.Location для идентификатора зоны
func (s *System) Location(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownZone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

// ToZone возвращает тот же момент времени в локальном представлении зоны
// Сам момент (instant) не меняется, меняется только представление
func (s *System) ToZone(t time.Time, name string) (time.Time, error) {
	loc, err := s.Location(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// Offset возвращает смещение зоны от UTC в момент t
// Для зон с переходом на летнее время результат зависит от t
func (s *System) Offset(t time.Time, name string) (time.Duration, error) {
	loc, err := s.Location(name)
	if err != nil {
		return 0, err
	}
	_, seconds := t.In(loc).Zone()
	return time.Duration(seconds) * time.Second, nil
}
