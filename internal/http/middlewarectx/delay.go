// Package middlewarectx содержит HTTP middleware приложения: инъекцию
// искусственной задержки, ограничитель частоты запросов и счётчик
// запросов для метрик.
package middlewarectx

import (
	"net/http"
	"time"
)

// DelayMiddleware возвращает middleware, задерживающее обработку
// каждого запроса на величину, которую возвращает delay. Задержка
// выполняется до всей логики обработчика и одинакова для всех
// маршрутов; delay вызывается на каждый запрос, чтобы значение можно
// было менять на живом процессе. Нулевая задержка ничего не делает.
func DelayMiddleware(delay func() time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d := delay(); d > 0 {
				time.Sleep(d)
			}
			next.ServeHTTP(w, r)
		})
	}
}
