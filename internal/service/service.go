// service содержит бизнес-логику comments-api.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/go-comments-api/internal/storage"
)

var (
	// ErrNotFound — комментарий отсутствует (в том числе при битом идентификаторе).
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — не хватает обязательных данных во входе.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка стораджа.
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика работы с комментариями.
type Service struct {
	storage  storage.Storage
	validate *validator.Validate
}

// New создает новый экземпляр Service.
func New(storage storage.Storage) *Service {
	return &Service{
		storage:  storage,
		validate: validator.New(),
	}
}

// Count — текущий размер коллекции (для метрик и логов).
func (s *Service) Count() int {
	return s.storage.Count()
}
