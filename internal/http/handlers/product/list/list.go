// Package list реализует HTTP-обработчик выдачи каталога товаров
// с фильтрацией по подстроке названия и категории.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/demo-storefront/internal/http/response"
	"github.com/magabrotheeeer/demo-storefront/internal/models"
)

// Catalog описывает интерфейс каталога товаров.
type Catalog interface {
	Filter(query, category string) []models.Product
}

// Handler обрабатывает HTTP-запросы на список товаров.
type Handler struct {
	log     *slog.Logger
	catalog Catalog
}

// New создает новый Handler с переданными логгером и каталогом.
func New(log *slog.Logger, catalog Catalog) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает товары каталога. Фильтр q — подстрока
// @Description названия без учёта регистра, category — точная категория
// @Description (plan, addon) либо all. Фильтры действуют одновременно.
// @Tags Products
// @Produce json
// @Param q query string false "Подстрока названия"
// @Param category query string false "Категория: plan, addon или all"
// @Success 200 {object} response.ItemsResponse "Отфильтрованные товары"
// @Router /api/products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	render.JSON(w, r, response.Items(h.catalog.Filter(query, category)))
}
