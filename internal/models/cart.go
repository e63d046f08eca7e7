package models

import (
	"encoding/json"
	"strconv"
)

// Price — цена позиции корзины, присланная клиентом.
// Отсутствующее или нечисловое значение приводится к нулю,
// числовая строка разбирается как число. Сервер доверяет
// присланной цене и не сверяет её с каталогом.
type Price float64

// UnmarshalJSON реализует мягкий разбор цены из JSON.
func (p *Price) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Price(parsed)
			return nil
		}
	}
	*p = 0
	return nil
}

// CartItem — позиция корзины, снимок товара на стороне клиента.
// Состав корзины целиком формируется клиентом и присылается
// одним запросом при оформлении заказа.
type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}
