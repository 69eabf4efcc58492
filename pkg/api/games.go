package api

// CreateGameRequest представляет запрос на добавление игры в каталог
type CreateGameRequest struct {
	ExternalID   string   `json:"externalId,omitempty"` // id во внешнем каталоге (slug)
	Name         string   `json:"name"`
	Platform     string   `json:"platform,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// UpdateGameRequest представляет частичное обновление игры (PATCH).
// nil-поля не отправляются и не изменяют значение на сервере.
type UpdateGameRequest struct {
	Name         *string  `json:"name,omitempty"`
	Platform     *string  `json:"platform,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}
