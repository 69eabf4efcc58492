package models

import "time"

// Статусы записи бэклога
const (
	EntryStatusBacklog   = "Backlog"
	EntryStatusPlaying   = "Playing"
	EntryStatusCompleted = "Completed"
	EntryStatusDropped   = "Dropped"
)

// Entry представляет запись бэклога: связь пользователя с игрой
type Entry struct {
	ID                   string    `json:"_id"`
	UserID               string    `json:"userId"`
	GameID               GameRef   `json:"gameId"` // строка либо populated объект
	Status               string    `json:"status"`
	DateStarted          string    `json:"dateStarted,omitempty"`  // ISO дата, без времени
	DateFinished         string    `json:"dateFinished,omitempty"` // ISO дата, без времени
	Notes                string    `json:"notes,omitempty"`
	AchievementsUnlocked int       `json:"achievementsUnlocked"`
	CreatedAt            time.Time `json:"createdAt,omitzero"`
	UpdatedAt            time.Time `json:"updatedAt,omitzero"`
}
