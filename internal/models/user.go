package models

import (
	"encoding/json"
)

// User представляет пользователя GameGuild.
// Объект принадлежит серверу: клиент знает только часть полей, остальное
// обязан передавать дальше без изменений. Поэтому при декодировании
// сохраняется исходный JSON, а MarshalJSON возвращает его байт-в-байт.
type User struct {
	ID        string   `json:"-"` // _id либо id, что пришло от сервера
	Username  string   `json:"-"`
	Email     string   `json:"-"`
	AvatarURL string   `json:"-"`
	Bio       string   `json:"-"`
	Friends   []string `json:"-"`

	raw json.RawMessage // исходный документ как есть
}

// userWire - известные клиенту поля серверного объекта
type userWire struct {
	MongoID   string   `json:"_id"`
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl"`
	Bio       string   `json:"bio"`
	Friends   []string `json:"friends"`
}

// UnmarshalJSON декодирует известные поля и запоминает исходный документ
func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	// Сервер отдает идентификатор как _id (mongo) либо id
	id := w.MongoID
	if id == "" {
		id = w.ID
	}

	u.ID = id
	u.Username = w.Username
	u.Email = w.Email
	u.AvatarURL = w.AvatarURL
	u.Bio = w.Bio
	u.Friends = w.Friends
	u.raw = append(json.RawMessage(nil), data...)

	return nil
}

// MarshalJSON возвращает исходный серверный документ, если он известен.
// Это гарантирует passthrough неизвестных полей при повторном сохранении.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}

	w := userWire{
		MongoID:   u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Friends:   u.Friends,
	}
	return json.Marshal(w)
}

// Raw возвращает исходный серверный документ (nil если User создан локально)
func (u *User) Raw() json.RawMessage {
	return u.raw
}

// DisplayName возвращает имя для отображения в интерфейсе
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
