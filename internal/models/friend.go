package models

import "time"

// Статусы запроса в друзья
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

// FriendRequest представляет запрос в друзья
type FriendRequest struct {
	ID        string    `json:"_id"`
	From      User      `json:"from"` // отправитель (populated сервером)
	To        User      `json:"to"`   // получатель (populated сервером)
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
