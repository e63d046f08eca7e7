// Package checkout реализует HTTP-обработчик оформления заказа.
//
// Handler принимает снимок корзины с токеном сессии, купоном и
// скоростью доставки, делегирует расчёт сервису и возвращает заказ.
// Статусы контрактны: 401 без сессии, 400 при пустой корзине,
// 503 при искусственном отказе.
package checkout

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
	checkoutservice "github.com/magabrotheeeer/demo-storefront/internal/services/checkout"
)

// Request — входные данные оформления заказа. Цены позиций сервер
// принимает как есть, не сверяя с каталогом.
type Request struct {
	Token         string            `json:"token"`
	Items         []models.CartItem `json:"items"`
	CouponCode    string            `json:"couponCode"`
	ShippingSpeed string            `json:"shippingSpeed"`
}

// Service описывает интерфейс бизнес-логики оформления заказа.
type Service interface {
	Checkout(ctx context.Context, token string, items []models.CartItem, couponCode, shippingSpeed string) (*models.Order, error)
}

// Handler обрабатывает HTTP-запросы на оформление заказа.
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
// @Summary Оформление заказа
// @Description Считает итоговую сумму корзины со скидкой и доставкой.
// @Description Заказ не сохраняется, повтор запроса выдаст новый orderId.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body Request true "Корзина, купон и скорость доставки"
// @Success 201 {object} models.Order "Заказ рассчитан"
// @Failure 400 {object} response.ErrorResponse "Пустая корзина или некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет действительной сессии"
// @Failure 503 {object} response.ErrorResponse "Искусственный отказ сервиса"
// @Router /api/checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout"
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

	order, err := h.service.Checkout(r.Context(), req.Token, req.Items, req.CouponCode, req.ShippingSpeed)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAuthRequired):
			log.Error("checkout without session")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, checkoutservice.ErrEmptyItems):
			log.Error("checkout with empty cart")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, checkoutservice.ErrUnavailable):
			log.Warn("checkout unavailable", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("checkout failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to checkout"))
		}
		return
	}

	log.Info("checkout completed", slog.String("order_id", order.OrderID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, order)
}
