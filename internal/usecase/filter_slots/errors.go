package filter_slots

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// (сбои хранилища пробрасываются, в отличие от деградаций пайплайна)
	ErrInternal = errors.New("filter_slots: internal error")
)
