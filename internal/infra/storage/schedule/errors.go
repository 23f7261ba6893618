package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда сохранённая конфигурация отсутствует
	// (в том числе когда сохранённый блоб не разбирается - он трактуется как отсутствующий)
	ErrConfigNotFound = errors.New("schedule.store: config not found")

	// ErrSlotsNotFound возвращается, когда сохранённая коллекция слотов отсутствует
	ErrSlotsNotFound = errors.New("schedule.store: slots not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("schedule.store: failed to encode record")

	// ErrStorage возвращается при ошибках нижележащего хранилища
	ErrStorage = errors.New("schedule.store: storage error")
)
