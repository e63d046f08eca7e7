package models

// Order — результат успешного оформления заказа. Заказ нигде не
// сохраняется: повтор того же запроса выдаст новый OrderID.
type Order struct {
	OrderID  string  `json:"orderId"`  // Уникальный идентификатор заказа
	Total    float64 `json:"total"`    // Итоговая сумма, не меньше нуля
	Discount float64 `json:"discount"` // Сумма скидки по купону
	Shipping float64 `json:"shipping"` // Стоимость доставки
	Message  string  `json:"message"`  // Сообщение для клиента
}
