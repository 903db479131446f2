package models

import "fmt"

// ResolutionError - название места не удалось превратить в полигон
type ResolutionError struct {
	Location string
	Msg      string
	Err      error
}

func (e *ResolutionError) Error() string {
	return e.Msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ExecutionError - ошибка подключения к хранилищу или выполнения запроса
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
