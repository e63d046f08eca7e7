// Package catalog содержит статический каталог товаров и чистую
// фильтрацию по названию и категории. Набор товаров фиксируется при
// старте процесса, порядок выдачи совпадает с порядком определения.
package catalog

import (
	"strings"

	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// Catalog хранит неизменяемый список товаров.
type Catalog struct {
	products []models.Product
}

// Default возвращает каталог с набором товаров демо-магазина.
func Default() *Catalog {
	return New([]models.Product{
		{ID: "starter", Name: "Starter Plan", Category: models.CategoryPlan, Price: 19},
		{ID: "growth", Name: "Growth Plan", Category: models.CategoryPlan, Price: 49},
		{ID: "insights", Name: "Insights Pack", Category: models.CategoryAddon, Price: 15},
		{ID: "priority", Name: "Priority Support", Category: models.CategoryAddon, Price: 25},
	})
}

// New создаёт каталог из переданного списка товаров.
func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// Filter возвращает товары, подходящие под оба фильтра сразу.
// query — подстрока названия без учёта регистра, пустая строка
// пропускает все названия. category — точное совпадение категории,
// пустая строка и "all" пропускают все категории. Побочных эффектов
// нет, исходный список не изменяется.
func (c *Catalog) Filter(query, category string) []models.Product {
	query = strings.ToLower(query)
	items := make([]models.Product, 0, len(c.products))
	for _, product := range c.products {
		if category != "" && category != models.CategoryAll && product.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		items = append(items, product)
	}
	return items
}
