package api

// CreateEntryRequest представляет запрос на создание записи бэклога
type CreateEntryRequest struct {
	GameID               string `json:"gameId"`
	Status               string `json:"status,omitempty"` // Backlog/Playing/Completed/Dropped
	DateStarted          string `json:"dateStarted,omitempty"`
	DateFinished         string `json:"dateFinished,omitempty"`
	Notes                string `json:"notes,omitempty"`
	AchievementsUnlocked int    `json:"achievementsUnlocked,omitempty"`
}

// UpdateEntryRequest представляет частичное обновление записи (PATCH)
type UpdateEntryRequest struct {
	Status               *string `json:"status,omitempty"`
	DateStarted          *string `json:"dateStarted,omitempty"`
	DateFinished         *string `json:"dateFinished,omitempty"`
	Notes                *string `json:"notes,omitempty"`
	AchievementsUnlocked *int    `json:"achievementsUnlocked,omitempty"`
}
