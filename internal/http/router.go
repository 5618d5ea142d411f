package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-comments-api/internal/http/handlers"
	"github.com/pribylovaa/go-comments-api/internal/http/middleware"
	"github.com/pribylovaa/go-comments-api/internal/metrics"
	"github.com/pribylovaa/go-comments-api/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Metrics  *metrics.Metrics // nil — без метрик.
	BasePath string           // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Один хендлер на пару метод+путь.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Get("/comments", h.ListComments)
	r.Post("/comments", h.CreateComment)
	r.Get("/comments/{id}", h.GetCommentByID)
	r.Patch("/comments/{id}", h.UpdateComment)
	r.Delete("/comments/{id}", h.DeleteComment)

	r.Get("/posts/{id}/comments", h.ListPostComments)
	r.Get("/users/{id}/comments", h.ListUserComments)
}
