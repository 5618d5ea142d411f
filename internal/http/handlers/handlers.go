package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pribylovaa/go-comments-api/internal/service"
)

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeJSON — разбор тела запроса. Неизвестные поля игнорируются,
// пустое тело эквивалентно пустому объекту.
func decodeJSON(r *http.Request, value any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(value)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
