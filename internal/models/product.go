// Package models содержит доменные структуры магазина: товары каталога,
// пользователей, позиции корзины, заказы и тикеты поддержки,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Категории товаров каталога. Других категорий каталог не знает.
const (
	// CategoryPlan — тарифный план.
	CategoryPlan = "plan"
	// CategoryAddon — дополнение к тарифу.
	CategoryAddon = "addon"
	// CategoryAll — сентинел "без фильтра по категории".
	CategoryAll = "all"
)

// Product представляет товар каталога. Набор товаров фиксируется
// при старте процесса и не изменяется.
type Product struct {
	ID       string `json:"id"`       // Уникальный идентификатор товара
	Name     string `json:"name"`     // Название товара
	Category string `json:"category"` // Категория: plan или addon
	Price    int    `json:"price"`    // Цена в условных единицах, неотрицательная
}
