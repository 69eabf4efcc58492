package api

// HealthStatusOK - значение поля status живого сервера
const HealthStatusOK = "ok"

// HealthResponse представляет ответ liveness-пробы GET /healthz
type HealthResponse struct {
	Status string `json:"status"` // "ok" если сервер жив
}
