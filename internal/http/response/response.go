// Package response содержит вспомогательные типы и функции для
// формирования унифицированных JSON-ответов HTTP-обработчиков.
// Ошибки всегда отдаются телом {"error": "<сообщение>"}, клиент
// показывает сообщение дословно.
package response

// ErrorResponse — структура ошибки для всех неуспешных ответов.
// Используется и в аннотациях @Failure как возвращаемый тип.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// Ack — подтверждение операции без данных: {"ok": true}.
type Ack struct {
	OK bool `json:"ok"`
}

// ItemsResponse — обёртка списочных ответов: {"items": [...]}.
type ItemsResponse struct {
	Items any `json:"items"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// OK возвращает подтверждение успешной операции.
func OK() Ack {
	return Ack{OK: true}
}

// Items оборачивает список в контрактную форму ответа.
func Items(items any) ItemsResponse {
	return ItemsResponse{Items: items}
}
