package server

import (
	"net/http"

	"github.com/pkg/errors"
)

// Ошибки обработки запросов.
var (
	// ErrBadRequest - обязательный параметр отсутствует или не разбирается.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound - маршрут не найден.
	ErrNotFound = errors.New("not found")
)

// writeError - преобразование ошибки в статус ответа.
func writeError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		http.Error(res, "Не корректный запрос", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(res, "Страница не найдена", http.StatusNotFound)
	default:
		http.Error(res, "Internal Server Error", http.StatusInternalServerError)
	}
}
