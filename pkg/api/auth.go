package api

import "encoding/json"

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // уникальный username
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// AuthResponse представляет ответ сервера на login/register.
// User передается как сырой JSON: форма объекта определяется сервером,
// клиент не должен терять неизвестные поля.
type AuthResponse struct {
	AccessToken string          `json:"accessToken"` // bearer token
	User        json.RawMessage `json:"user"`        // объект пользователя как есть
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string          `json:"error,omitempty"`   // описание ошибки
	Message string          `json:"message,omitempty"` // человекочитаемое сообщение
	Code    string          `json:"code,omitempty"`    // машиночитаемый код ошибки
	Details json.RawMessage `json:"details,omitempty"` // произвольные детали
}
