package domain

import "time"

// Slot временной слот расписания
//
// StartTime и EndTime - абсолютные моменты времени; идентификатор и границы
// неизменяемы после генерации. IsAvailable - производное поле: оно
// пересчитывается на каждом проходе фильтра и не является источником истины
type Slot struct {
	ID          string
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}

// Duration возвращает длительность слота
func (s *Slot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// InZone возвращает копию слота с моментами времени в локальном
// представлении loc. Сами моменты (instants) не меняются
func (s Slot) InZone(loc *time.Location) Slot {
	s.StartTime = s.StartTime.In(loc)
	s.EndTime = s.EndTime.In(loc)
	return s
}

// Overlaps возвращает true, если слот пересекается с интервалом [start, end)
// Границы не считаются пересечением
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}
