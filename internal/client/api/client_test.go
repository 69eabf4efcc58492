package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:3000/")

	assert.NotNil(t, client)
	// Хвостовой слэш base URL удаляется
	assert.Equal(t, "http://localhost:3000", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Do_PathNormalization проверяет добавление ведущего слэша
func TestClient_Do_PathNormalization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Do(context.Background(), http.MethodGet, "games", nil, nil)
	require.NoError(t, err)
}

// TestClient_Do_AuthAttachment проверяет правила прикладывания bearer token
func TestClient_Do_AuthAttachment(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		token      string
		opts       []RequestOption
		wantHeader string
	}{
		{
			name:       "token attached to resource path",
			path:       "/games",
			token:      "tok1",
			wantHeader: "Bearer tok1",
		},
		{
			name:       "no token set",
			path:       "/games",
			token:      "",
			wantHeader: "",
		},
		{
			name:       "auth endpoints never get token",
			path:       "/auth/login",
			token:      "tok1",
			wantHeader: "",
		},
		{
			name:       "health endpoint never gets token",
			path:       "/healthz",
			token:      "tok1",
			wantHeader: "",
		},
		{
			name:       "explicit opt out",
			path:       "/games",
			token:      "tok1",
			opts:       []RequestOption{WithoutAuth()},
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			if tt.token != "" {
				client.SetAccessToken(tt.token)
			}

			err := client.Do(context.Background(), http.MethodGet, tt.path, nil, nil, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
		})
	}
}

// TestClient_Do_BodyEncoding проверяет кодирование тела запроса
func TestClient_Do_BodyEncoding(t *testing.T) {
	t.Run("struct body is JSON encoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "rocket", body["name"])
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.Do(context.Background(), http.MethodPost, "/games", map[string]string{"name": "rocket"}, nil)
		require.NoError(t, err)
	})

	t.Run("byte body passes through without content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x1, 0x2, 0x3}, data)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.Do(context.Background(), http.MethodPost, "/upload", []byte{0x1, 0x2, 0x3}, nil,
			WithHeader("Content-Type", "application/octet-stream"))
		require.NoError(t, err)
	})
}

// TestClient_Do_ResponseParsing проверяет разбор успешных ответов
func TestClient_Do_ResponseParsing(t *testing.T) {
	t.Run("json response decoded into result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"name":"Celeste"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var result struct {
			Name string `json:"name"`
		}
		err := client.Do(context.Background(), http.MethodGet, "/games/g1", nil, &result)
		require.NoError(t, err)
		assert.Equal(t, "Celeste", result.Name)
	})

	t.Run("204 leaves result untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var result map[string]string
		err := client.Do(context.Background(), http.MethodDelete, "/games/g1", nil, &result)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("malformed json tolerated as empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{not-json`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var result map[string]string
		err := client.Do(context.Background(), http.MethodGet, "/games", nil, &result)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("text response returned as raw string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("pong"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		var result string
		err := client.Do(context.Background(), http.MethodGet, "/ping", nil, &result)
		require.NoError(t, err)
		assert.Equal(t, "pong", result)
	})
}

// TestClient_Do_ErrorNormalization проверяет, что любой не-2xx статус
// дает RequestError с верным статусом и пометкой Unauthorized только на 401
func TestClient_Do_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		responseBody     string
		contentType      string
		opts             []RequestOption
		wantMessage      string
		wantUnauthorized bool
	}{
		{
			name:             "server message used",
			statusCode:       http.StatusBadRequest,
			responseBody:     `{"message":"invalid payload"}`,
			contentType:      "application/json",
			wantMessage:      "invalid payload",
			wantUnauthorized: false,
		},
		{
			name:             "status text fallback",
			statusCode:       http.StatusInternalServerError,
			responseBody:     "boom",
			contentType:      "text/plain",
			wantMessage:      "Internal Server Error",
			wantUnauthorized: false,
		},
		{
			name:             "401 flagged unauthorized",
			statusCode:       http.StatusUnauthorized,
			responseBody:     `{"message":"token expired"}`,
			contentType:      "application/json",
			wantMessage:      "token expired",
			wantUnauthorized: true,
		},
		{
			name:             "401 with opt out is not flagged",
			statusCode:       http.StatusUnauthorized,
			responseBody:     `{"message":"token expired"}`,
			contentType:      "application/json",
			opts:             []RequestOption{SkipAuthOn401()},
			wantMessage:      "token expired",
			wantUnauthorized: false,
		},
		{
			name:             "403 is not unauthorized",
			statusCode:       http.StatusForbidden,
			responseBody:     `{"message":"forbidden"}`,
			contentType:      "application/json",
			wantMessage:      "forbidden",
			wantUnauthorized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.Do(context.Background(), http.MethodGet, "/games", nil, nil, tt.opts...)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.statusCode, reqErr.Status)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.wantUnauthorized, reqErr.Unauthorized)
			assert.Equal(t, tt.wantUnauthorized, IsUnauthorized(err))
			assert.Equal(t, []byte(tt.responseBody), reqErr.Body)
		})
	}
}

// TestClient_Do_NetworkError проверяет нормализацию сетевой ошибки
func TestClient_Do_NetworkError(t *testing.T) {
	// Закрытый сервер гарантирует connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	err := client.Do(context.Background(), http.MethodGet, "/games", nil, nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, reqErr.Status)
	assert.False(t, reqErr.Unauthorized)
}

// TestClient_CheckHealth проверяет liveness-пробу
func TestClient_CheckHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/healthz", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.SetAccessToken("tok1") // токен не должен прикладываться
		assert.NoError(t, client.CheckHealth(context.Background()))
	})

	t.Run("degraded status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.CheckHealth(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "degraded")
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL)
		assert.Error(t, client.CheckHealth(context.Background()))
	})
}

// TestClient_TokenHolder проверяет установку и сброс in-memory токена
func TestClient_TokenHolder(t *testing.T) {
	client := NewClient("http://localhost:3000")

	assert.Empty(t, client.AccessToken())

	client.SetAccessToken("tok1")
	assert.Equal(t, "tok1", client.AccessToken())

	client.SetAccessToken("tok2")
	assert.Equal(t, "tok2", client.AccessToken())

	client.ClearAccessToken()
	assert.Empty(t, client.AccessToken())
}
