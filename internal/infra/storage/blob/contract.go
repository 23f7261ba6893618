package blob

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Store key-value хранилище бинарных блобов
//
// Ядро не зависит от конкретной реализации: в production используется
// Postgres (Repository), в тестах - Memory
type Store interface {
	// Put сохраняет значение по ключу, перезаписывая существующее
	Put(ctx context.Context, key string, value []byte) error

	// Get возвращает значение по ключу или ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Remove удаляет значение по ключу (отсутствие ключа не ошибка)
	Remove(ctx context.Context, key string) error

	// Clear удаляет все ключи с указанным префиксом
	Clear(ctx context.Context, prefix string) error
}
