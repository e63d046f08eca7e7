// Package health реализует HTTP-обработчик проверки живости сервиса.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Response — тело ответа проверки живости.
type Response struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

// Handler обрабатывает запросы проверки живости.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Description Возвращает признак готовности сервиса и текущее время.
// @Tags Health
// @Produce json
// @Success 200 {object} Response "Сервис работает"
// @Router /api/health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{
		OK:   true,
		Time: time.Now().UTC().Format(time.RFC3339),
	})
}
