package repo

import "errors"

// Сентинельные ошибки слоя хранения; обработчики переводят их в HTTP-коды.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
