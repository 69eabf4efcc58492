package models

// Session представляет локально закэшированную сессию: bearer token
// и профиль пользователя, которому он был выдан. Оба поля опциональны -
// частично записанная сессия допустима (см. session store).
type Session struct {
	Token string
	User  *User
}

// Valid сообщает, достаточно ли сессии для аутентифицированного состояния
func (s Session) Valid() bool {
	return s.Token != "" && s.User != nil
}
