package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Пароль хранится открытым текстом: это демонстрационный сервис,
// хэширование сознательно вынесено за рамки.
type User struct {
	Name      string    // Имя пользователя
	Email     string    // Электронная почта, уникальный ключ
	Password  string    // Пароль открытым текстом (только для демо)
	Role      string    // Роль пользователя, по умолчанию member
	CreatedAt time.Time // Дата регистрации
}

// PublicUser — публичное представление пользователя для ответов API.
// Пароль сюда не попадает.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public возвращает представление пользователя без учётных данных.
func (u User) Public() PublicUser {
	return PublicUser{
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
