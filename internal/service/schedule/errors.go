package schedule

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения занятости сотрудника
	ErrInternal = errors.New("schedule: internal error")
)
