package blob

import "errors"

var (
	// ErrKeyNotFound возвращается, когда значение по ключу отсутствует
	ErrKeyNotFound = errors.New("blob.repository: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blob.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blob.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blob.repository: failed to scan row")
)
