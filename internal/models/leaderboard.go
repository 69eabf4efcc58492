package models

// LeaderboardRow представляет строку таблицы лидеров.
// Ранжирование считает сервер, клиент отображает как есть.
type LeaderboardRow struct {
	Rank           int  `json:"rank"`
	User           User `json:"user"`
	CompletedGames int  `json:"completedGames"`
	Achievements   int  `json:"achievements"`
	Score          int  `json:"score"`
}
