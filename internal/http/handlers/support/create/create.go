// Package create реализует HTTP-обработчик создания тикета поддержки.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/demo-storefront/internal/http/response"
	"github.com/magabrotheeeer/demo-storefront/internal/lib/sl"
	"github.com/magabrotheeeer/demo-storefront/internal/models"
	"github.com/magabrotheeeer/demo-storefront/internal/services/auth"
	"github.com/magabrotheeeer/demo-storefront/internal/services/support"
)

// Request — входные данные обращения в поддержку. Обязательность
// темы и текста проверяет сервис: проверка сессии идёт первой, и
// структурная валидация до неё ломала бы порядок статусов.
type Request struct {
	Token  string `json:"token"`
	Topic  string `json:"topic"`
	Detail string `json:"detail"`
}

// Response — тело успешного ответа с созданным тикетом.
type Response struct {
	OK     bool                 `json:"ok"`
	Ticket models.SupportTicket `json:"ticket"`
}

// Service описывает интерфейс бизнес-логики поддержки.
type Service interface {
	Create(ctx context.Context, token, topic, detail string) (*models.SupportTicket, error)
}

// Handler обрабатывает HTTP-запросы на создание тикета.
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
// @Summary Создать тикет поддержки
// @Description Заводит обращение от имени владельца сессии и возвращает его.
// @Tags Support
// @Accept json
// @Produce json
// @Param request body Request true "Тема и текст обращения"
// @Success 201 {object} Response "Тикет создан"
// @Failure 400 {object} response.ErrorResponse "Не заполнены тема или текст"
// @Failure 401 {object} response.ErrorResponse "Нет действительной сессии"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/support [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.support.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	ticket, err := h.service.Create(r.Context(), req.Token, req.Topic, req.Detail)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAuthRequired):
			log.Error("ticket without session")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, support.ErrMissingFields):
			log.Error("missing ticket fields", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to create ticket", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create ticket"))
		}
		return
	}

	log.Info("ticket created", slog.String("ticket_id", ticket.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		OK:     true,
		Ticket: *ticket,
	})
}
