package entries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

// TestService_List проверяет запрос списка с limit
func TestService_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries", r.URL.Path)
		assert.Equal(t, "limit=10", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"e1","gameId":"g1","status":"Playing"},{"_id":"e2","gameId":{"_id":"g2","name":"Celeste"}}]`))
	}))
	defer server.Close()

	service := NewService(api.NewClient(server.URL))

	found, err := service.List(context.Background(), ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 2)

	// Обе формы gameId декодируются
	assert.False(t, found[0].GameID.Resolved())
	assert.Equal(t, "g1", found[0].GameID.ID())
	assert.True(t, found[1].GameID.Resolved())
	assert.Equal(t, "Celeste", found[1].GameID.Game().Name)
}

// TestService_IDValidation проверяет локальный отказ без сетевого вызова
func TestService_IDValidation(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	service := NewService(api.NewClient(server.URL))
	ctx := context.Background()

	_, err := service.Get(ctx, "")
	assert.Error(t, err)

	_, err = service.Create(ctx, pkgapi.CreateEntryRequest{Status: "Playing"})
	assert.Error(t, err)

	_, err = service.Update(ctx, "", pkgapi.UpdateEntryRequest{})
	assert.Error(t, err)

	err = service.Delete(ctx, "")
	assert.Error(t, err)

	assert.False(t, called)
}

// TestService_ResolveGame проверяет дозагрузку встроенного объекта игры
func TestService_ResolveGame(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/games/g1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"g1","name":"Celeste","platform":"Switch"}`))
	}))
	defer server.Close()

	service := NewService(api.NewClient(server.URL))
	ctx := context.Background()

	var entry models.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"e1","gameId":"g1","status":"Playing"}`), &entry))

	require.NoError(t, service.ResolveGame(ctx, &entry))
	require.True(t, entry.GameID.Resolved())
	assert.Equal(t, "Celeste", entry.GameID.Game().Name)
	assert.Equal(t, 1, requests)

	// Повторный вызов не делает сетевых запросов
	require.NoError(t, service.ResolveGame(ctx, &entry))
	assert.Equal(t, 1, requests)
}
