// Package list реализует HTTP-обработчик выдачи тикетов поддержки
// владельца сессии. Токен передаётся параметром запроса token.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/demo-storefront/internal/http/response"
	"github.com/magabrotheeeer/demo-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/demo-storefront/internal/models"
	"github.com/magabrotheeeer/demo-storefront/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики поддержки.
type Service interface {
	ListByOwner(ctx context.Context, token string) ([]models.SupportTicket, error)
}

// Handler обрабатывает HTTP-запросы на список тикетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список тикетов владельца
// @Description Возвращает до десяти последних тикетов владельца сессии
// @Description в порядке создания.
// @Tags Support
// @Produce json
// @Param token query string true "Токен сессии"
// @Success 200 {object} response.ItemsResponse "Тикеты владельца"
// @Failure 401 {object} response.ErrorResponse "Нет действительной сессии"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/support [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.support.list"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := r.URL.Query().Get("token")
	tickets, err := h.service.ListByOwner(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrAuthRequired) {
			log.Error("ticket list without session")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to list tickets", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list tickets"))
		return
	}

	render.JSON(w, r, response.Items(tickets))
}
