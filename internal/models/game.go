package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Game представляет игру в каталоге
type Game struct {
	ID           string    `json:"_id"`
	ExternalID   string    `json:"externalId,omitempty"` // slug во внешнем каталоге
	Name         string    `json:"name"`
	Platform     string    `json:"platform,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// GameRef - ссылка на игру в записи бэклога.
// Сервер отдает поле gameId в двух формах: строка с id либо встроенный
// объект игры (populated). GameRef моделирует это как tagged union:
// либо неразрешенный id, либо разрешенный объект.
type GameRef struct {
	id   string
	game *Game
}

// UnresolvedGameRef создает ссылку, содержащую только id
func UnresolvedGameRef(id string) GameRef {
	return GameRef{id: id}
}

// ResolvedGameRef создает ссылку со встроенным объектом игры
func ResolvedGameRef(g *Game) GameRef {
	if g == nil {
		return GameRef{}
	}
	return GameRef{id: g.ID, game: g}
}

// ID возвращает идентификатор игры независимо от формы ссылки
func (r GameRef) ID() string {
	return r.id
}

// Game возвращает встроенный объект игры или nil, если ссылка не разрешена
func (r GameRef) Game() *Game {
	return r.game
}

// Resolved сообщает, содержит ли ссылка полный объект игры
func (r GameRef) Resolved() bool {
	return r.game != nil
}

// IsZero сообщает, что ссылка пустая (ни id, ни объекта)
func (r GameRef) IsZero() bool {
	return r.id == "" && r.game == nil
}

// Resolve превращает неразрешенную ссылку в разрешенную.
// id объекта должен совпадать с id ссылки, если он был известен.
func (r *GameRef) Resolve(g *Game) error {
	if g == nil {
		return fmt.Errorf("cannot resolve game ref with nil game")
	}
	if r.id != "" && g.ID != "" && r.id != g.ID {
		return fmt.Errorf("game ref id mismatch: have %q, got %q", r.id, g.ID)
	}
	r.id = g.ID
	r.game = g
	return nil
}

// UnmarshalJSON принимает обе серверные формы: строку и объект
func (r *GameRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = GameRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("failed to unmarshal game ref id: %w", err)
		}
		*r = GameRef{id: id}
		return nil
	}

	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("failed to unmarshal embedded game: %w", err)
	}
	*r = GameRef{id: g.ID, game: &g}
	return nil
}

// MarshalJSON кодирует ссылку в той же форме, в которой она была получена
func (r GameRef) MarshalJSON() ([]byte, error) {
	if r.game != nil {
		return json.Marshal(r.game)
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}
