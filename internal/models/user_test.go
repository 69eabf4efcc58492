package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser_UnmarshalJSON проверяет декодирование серверного объекта пользователя
func TestUser_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantID   string
		wantName string
	}{
		{
			name:     "mongo style _id",
			input:    `{"_id":"u1","username":"alice","email":"a@b.com"}`,
			wantID:   "u1",
			wantName: "alice",
		},
		{
			name:     "plain id",
			input:    `{"id":"u2","username":"bob"}`,
			wantID:   "u2",
			wantName: "bob",
		},
		{
			name:     "_id wins over id",
			input:    `{"_id":"u1","id":"other","username":"alice"}`,
			wantID:   "u1",
			wantName: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			err := json.Unmarshal([]byte(tt.input), &u)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, u.ID)
			assert.Equal(t, tt.wantName, u.Username)
		})
	}
}

// TestUser_MarshalJSON_Passthrough проверяет, что неизвестные клиенту поля
// не теряются при повторной сериализации
func TestUser_MarshalJSON_Passthrough(t *testing.T) {
	raw := `{"_id":"u1","username":"alice","steamHandle":"alice42","prefs":{"theme":"dark"}}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

// TestUser_MarshalJSON_LocalUser проверяет сериализацию локально созданного пользователя
func TestUser_MarshalJSON_LocalUser(t *testing.T) {
	u := User{ID: "dev-1", Username: "dev-user"}

	out, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded User
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "dev-1", decoded.ID)
	assert.Equal(t, "dev-user", decoded.Username)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "alice", (&User{ID: "u1", Username: "alice", Email: "a@b.com"}).DisplayName())
	assert.Equal(t, "a@b.com", (&User{ID: "u1", Email: "a@b.com"}).DisplayName())
	assert.Equal(t, "u1", (&User{ID: "u1"}).DisplayName())
}
