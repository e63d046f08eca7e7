package models

import "time"

// SupportTicket — обращение в поддержку. Журнал тикетов только
// пополняется, владелец определяется сессией в момент создания.
type SupportTicket struct {
	ID        string    `json:"id"`        // Уникальный идентификатор тикета
	Email     string    `json:"email"`     // Почта владельца тикета
	Topic     string    `json:"topic"`     // Тема обращения
	Detail    string    `json:"detail"`    // Текст обращения
	CreatedAt time.Time `json:"createdAt"` // Время создания
}
