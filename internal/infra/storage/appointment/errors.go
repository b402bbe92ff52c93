package appointment

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment storage: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment storage: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("appointment storage: scan row")
)
