package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("types: invalid date format, expected YYYY-MM-DD")

// Строгий шаблон: ровно четыре цифры года, две месяца, две дня
var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

const dateLayout = "2006-01-02"

// DateString календарная дата в формате "YYYY-MM-DD"
type DateString string

// NewDateString создает DateString из time.Time (отбрасывая время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true для пустого значения
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат и календарную корректность даты
// Шаблон отсекает частично валидные строки, time.Parse - несуществующие даты
func (d DateString) Validate() error {
	if !datePattern.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// ToTime возвращает полночь этой даты в указанной таймзоне
func (d DateString) ToTime(loc *time.Location) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(dateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// IsBefore возвращает true, если d строго раньше other
// Лексикографическое сравнение корректно для формата YYYY-MM-DD
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если d строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}
