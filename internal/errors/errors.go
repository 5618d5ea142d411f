// errors стандартизирует ответы об ошибках HTTP-слоя comments-api.
// На вход принимает ошибку (APIError из фабрики New или сервисную ошибку),
// на выход даёт:
//   - корректный HTTP-статус;
//   - короткое безопасное сообщение без утечки деталей.
//
// Формат тела: {"error": "<message>", "request_id": "<id>"}.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-comments-api/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Стабильные сообщения для клиентов.
const (
	MsgInsufficientData = "Insufficient Data"
	MsgCommentNotFound  = "Comment not found"
	MsgInternal         = "internal error"
)

// APIError — объект отказа (status, message), который понимает WriteError.
type APIError struct {
	Status  int
	Message string
}

// New — фабрика объекта отказа.
func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string { return e.Message }

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500, чтобы не послать "200 OK" с телом ошибки;
//   - *APIError — статус и сообщение берутся как есть;
//   - service.ErrInvalidArgument -> 400 "Insufficient Data";
//   - service.ErrNotFound -> 404 "Comment not found";
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500 без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: MsgInternal}
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Status, ErrorResponse{Error: apiErr.Message}
	}

	switch {
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{Error: MsgInsufficientData}
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: MsgCommentNotFound}
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Error: "canceled"}
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Error: "deadline exceeded"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: MsgInternal}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
