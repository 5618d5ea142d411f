package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pribylovaa/go-comments-api/internal/models"
	"github.com/pribylovaa/go-comments-api/internal/storage"
	"github.com/pribylovaa/go-comments-api/pkg/log"
)

// Входные структуры сервисного слоя.

// CreateCommentInput — создание комментария. Все поля обязательны.
type CreateCommentInput struct {
	UserID models.Ref `validate:"required"`
	PostID models.Ref `validate:"required"`
	Body   string     `validate:"required"`
}

// UpdateCommentInput — замена тела комментария.
// ID — строковое представление из пути запроса.
type UpdateCommentInput struct {
	ID   string
	Body string `validate:"required"`
}

// CreateComment — бизнес-операция создания комментария.
//
// Валидация:
//   - UserID, PostID, Body должны присутствовать (пустые -> ErrInvalidArgument).
//
// Поведение/ошибки:
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", in.UserID.String(),
		"post_id", in.PostID.String(),
	)

	if err := s.validate.Struct(in); err != nil {
		lg.Warn("invalid argument: insufficient data", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.CreateComment(ctx, models.Comment{
		UserID: in.UserID,
		PostID: in.PostID,
		Body:   in.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidComment):
			lg.Warn("invalid comment")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case isContextErr(err):
			lg.Warn("request canceled", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		default:
			lg.Error("storage error on CreateComment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Debug("comment created", "id", result.ID)
	return result, nil
}

// ListComments — комментарии по фильтру в порядке вставки.
// Пустой фильтр — вся коллекция; отсутствие совпадений — пустой срез.
func (s *Service) ListComments(ctx context.Context, filter models.Filter) ([]models.Comment, error) {
	const op = "service/comments/ListComments"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", filter.UserID.String(),
		"post_id", filter.PostID.String(),
	)

	result, err := s.storage.ListComments(ctx, filter)
	if err != nil {
		if isContextErr(err) {
			lg.Warn("request canceled", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		lg.Error("storage error on ListComments", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if result == nil {
		result = []models.Comment{}
	}

	return result, nil
}

// CommentByID — получить комментарий по ID.
//
// Поведение/ошибки:
//   - ErrNotFound — если комментарий не найден или id не разбирается как целое;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) CommentByID(ctx context.Context, rawID string) (*models.Comment, error) {
	const op = "service/comments/CommentByID"

	lg := log.From(ctx).With("op", op, "id", rawID)

	id, ok := parseID(rawID)
	if !ok {
		lg.Warn("comment not found: malformed id")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	result, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case isContextErr(err):
			lg.Warn("request canceled", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// UpdateCommentBody — заменить тело комментария.
//
// Валидация:
//   - Body обязателен (пустой или отсутствующий -> ErrInvalidArgument).
//
// Поведение/ошибки:
//   - ErrNotFound — если комментарий не найден или id не разбирается как целое;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) UpdateCommentBody(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	const op = "service/comments/UpdateCommentBody"

	lg := log.From(ctx).With("op", op, "id", in.ID)

	id, ok := parseID(in.ID)
	if !ok {
		lg.Warn("comment not found: malformed id")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err := s.validate.Struct(in); err != nil {
		lg.Warn("invalid argument: empty body", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.UpdateCommentBody(ctx, id, in.Body)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case isContextErr(err):
			lg.Warn("request canceled", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		default:
			lg.Error("storage error on UpdateCommentBody", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// DeleteComment — удаление комментария по ID.
//
// Поведение/ошибки:
//   - ErrNotFound — если комментарий не найден или id не разбирается как целое;
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) DeleteComment(ctx context.Context, rawID string) error {
	const op = "service/comments/DeleteComment"

	lg := log.From(ctx).With("op", op, "id", rawID)

	id, ok := parseID(rawID)
	if !ok {
		lg.Warn("comment not found: malformed id")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err := s.storage.DeleteComment(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case isContextErr(err):
			lg.Warn("request canceled", "err", err)
			return fmt.Errorf("%s: %w", op, err)
		default:
			lg.Error("storage error on DeleteComment", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Debug("comment deleted")
	return nil
}

// parseID — строгий разбор десятичного идентификатора из пути.
// Всё, что не является целым числом, трактуется как «нет такой записи».
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
