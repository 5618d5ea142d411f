// memory реализует storage.Storage поверх упорядоченного среза в памяти процесса.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pribylovaa/go-comments-api/internal/models"
	"github.com/pribylovaa/go-comments-api/internal/storage"
)

// Memory — упорядоченная коллекция комментариев.
//
// Инварианты:
//   - порядок comments совпадает с порядком вставки;
//   - lastID только растёт: ID удалённых записей повторно не выдаются;
//   - каждая операция целиком выполняется под mu.
type Memory struct {
	mu       sync.RWMutex
	comments []models.Comment
	lastID   int64
}

// New создаёт пустое хранилище.
func New() *Memory {
	return &Memory{}
}

// CreateComment назначает ID = lastID + 1 и добавляет запись в конец.
func (m *Memory) CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error) {
	const op = "storage/memory/CreateComment"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if comm.UserID.IsZero() || comm.PostID.IsZero() || comm.Body == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidComment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	comm.ID = m.lastID
	m.comments = append(m.comments, comm)

	return &comm, nil
}

// ListComments последовательно сужает коллекцию фильтром; порядок сохраняется.
func (m *Memory) ListComments(ctx context.Context, filter models.Filter) ([]models.Comment, error) {
	const op = "storage/memory/ListComments"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Comment, 0, len(m.comments))
	for _, c := range m.comments {
		if filter.Match(c) {
			out = append(out, c)
		}
	}

	return out, nil
}

// CommentByID возвращает копию записи.
func (m *Memory) CommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "storage/memory/CommentByID"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	out := m.comments[i]
	return &out, nil
}

// UpdateCommentBody меняет только Body; позиция записи не меняется.
func (m *Memory) UpdateCommentBody(ctx context.Context, id int64, body string) (*models.Comment, error) {
	const op = "storage/memory/UpdateCommentBody"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	m.comments[i].Body = body

	out := m.comments[i]
	return &out, nil
}

// DeleteComment вырезает одну запись без перенумерации остальных.
func (m *Memory) DeleteComment(ctx context.Context, id int64) error {
	const op = "storage/memory/DeleteComment"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	m.comments = append(m.comments[:i], m.comments[i+1:]...)
	return nil
}

// Count возвращает текущий размер коллекции.
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.comments)
}

// indexOf — линейный поиск первой записи с данным ID; вызывать под mu.
func (m *Memory) indexOf(id int64) int {
	for i := range m.comments {
		if m.comments[i].ID == id {
			return i
		}
	}

	return -1
}
