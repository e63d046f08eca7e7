// Package checkout реализует оформление заказа: проверку сессии и
// состава корзины, инъекцию искусственных отказов и расчёт итоговой
// суммы со скидкой и доставкой.
//
// Каждый вызов — чистая функция от сессии, присланной корзины, купона,
// скорости доставки и одной случайной выборки. Заказ нигде не
// сохраняется, повтор того же запроса выдаёт новый идентификатор.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// Ошибки сервиса, по которым обработчики выбирают HTTP-статус.
var (
	// ErrEmptyItems — корзина пуста или отсутствует.
	ErrEmptyItems = errors.New("items are required")
	// ErrUnavailable — сработала инъекция отказа, расчёт не выполнялся.
	ErrUnavailable = errors.New("checkout service unavailable")
)

// Константы ценовой политики. Единственный распознаваемый купон даёт
// десятипроцентную скидку, единственная платная доставка — express.
const (
	welcomeCoupon   = "WELCOME10"
	couponRate      = 0.10
	expressSpeed    = "express"
	expressShipping = 12
	orderMessage    = "Order completed"
)

// SessionResolver проверяет токен сессии и возвращает почту владельца.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// FailureInjector решает, завершить ли вызов искусственным отказом.
type FailureInjector interface {
	ShouldFail() bool
}

// Service реализует оформление заказа поверх проверки сессий и
// инжектора отказов.
type Service struct {
	sessions SessionResolver
	injector FailureInjector
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(sessions SessionResolver, injector FailureInjector, log *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		injector: injector,
		log:      log,
	}
}

// Checkout проверяет сессию и корзину, затем считает заказ.
//
// Порядок проверок фиксирован: сначала сессия, затем непустая корзина,
// затем инъекция отказа — до любых расчётов. Цены позиций берутся как
// прислал клиент и с каталогом не сверяются. Скидка действует только
// по купону WELCOME10 и округляется половиной от нуля, как и в
// math.Round; незнакомые купоны молча игнорируются. Доставка express
// стоит 12, любая другая — 0. Итог обрезается снизу нулём.
func (s *Service) Checkout(ctx context.Context, token string, items []models.CartItem, couponCode, shippingSpeed string) (*models.Order, error) {
	email, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if s.injector.ShouldFail() {
		s.log.Warn("injected checkout failure", slog.String("email", email))
		return nil, ErrUnavailable
	}

	var basePrice float64
	for _, item := range items {
		basePrice += float64(item.Price)
	}

	var discount float64
	if couponCode == welcomeCoupon {
		discount = math.Round(basePrice * couponRate)
	}

	var shipping float64
	if shippingSpeed == expressSpeed {
		shipping = expressShipping
	}

	total := math.Max(0, basePrice-discount+shipping)

	order := &models.Order{
		OrderID:  "ord_" + uuid.NewString(),
		Total:    total,
		Discount: discount,
		Shipping: shipping,
		Message:  orderMessage,
	}
	s.log.Info("order completed",
		slog.String("order_id", order.OrderID),
		slog.String("email", email),
		slog.Float64("total", total))
	return order, nil
}
