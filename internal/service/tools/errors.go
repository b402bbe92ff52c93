package tools

import "errors"

var (
	// ErrUnknownTool возвращается при вызове незарегистрированного инструмента
	ErrUnknownTool = errors.New("tools: unknown tool")

	// ErrInternal возвращается при внутренних ошибках выполнения инструмента
	ErrInternal = errors.New("tools: internal error")
)
