package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// RequestError представляет нормализованную ошибку API: любой не-2xx ответ
// и любая сетевая ошибка транспорта приводятся к этому типу.
type RequestError struct {
	Status       int             // HTTP статус, 0 для сетевых ошибок
	Message      string          // message сервера, иначе стандартный текст статуса
	Code         string          // машиночитаемый код сервера, если был
	Details      json.RawMessage // произвольные детали сервера, если были
	Body         []byte          // сырое тело ответа
	Unauthorized bool            // статус 401, если вызов не отключил пометку
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// newRequestError нормализует не-2xx ответ сервера.
// Сообщение берется из поля message тела, иначе - стандартный текст статуса.
func newRequestError(status int, body []byte, skipAuthOn401 bool) *RequestError {
	reqErr := &RequestError{
		Status: status,
		Body:   body,
	}

	var errResp struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		reqErr.Message = errResp.Message
		if reqErr.Message == "" {
			reqErr.Message = errResp.Error
		}
		reqErr.Code = errResp.Code
		reqErr.Details = errResp.Details
	}

	if reqErr.Message == "" {
		reqErr.Message = http.StatusText(status)
	}
	if reqErr.Message == "" {
		reqErr.Message = "request failed"
	}

	reqErr.Unauthorized = status == http.StatusUnauthorized && !skipAuthOn401

	return reqErr
}

// IsUnauthorized сообщает, что ошибка - помеченный 401 от сервера
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Unauthorized
}

// StatusOf возвращает HTTP статус ошибки (0 если это не RequestError)
func StatusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	return 0
}
