package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-comments-api/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidComment — у комментария не заполнены обязательные поля.
	ErrInvalidComment = errors.New("invalid comment")
)

// Storage описывает операции над упорядоченной коллекцией комментариев.
type Storage interface {
	// CreateComment назначает ID и добавляет комментарий в конец коллекции.
	// Входной Comment должен содержать UserID, PostID, Body; поле ID игнорируется.
	// Возможные ошибки: ErrInvalidComment.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	// ListComments возвращает комментарии, прошедшие фильтр, в порядке вставки.
	// Пустой фильтр — вся коллекция. Отсутствие совпадений — пустой срез, не ошибка.
	ListComments(ctx context.Context, filter models.Filter) ([]models.Comment, error)

	// CommentByID возвращает комментарий по идентификатору.
	// Если запись не найдена — ErrNotFound.
	CommentByID(ctx context.Context, id int64) (*models.Comment, error)

	// UpdateCommentBody заменяет Body на месте и возвращает обновлённую запись.
	// Если запись не найдена — ErrNotFound.
	UpdateCommentBody(ctx context.Context, id int64, body string) (*models.Comment, error)

	// DeleteComment удаляет ровно одну запись; ID и порядок остальных не меняются.
	// Если запись не найдена — ErrNotFound.
	DeleteComment(ctx context.Context, id int64) error

	// Count возвращает текущий размер коллекции.
	Count() int
}
