package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gameguild/gg-client/internal/client/storage"
	"github.com/gameguild/gg-client/internal/models"
)

// Ключи сессии в key-value хранилище.
// Токен и пользователь - физически независимые записи: транзакционной
// гарантии между ними нет, оба пишутся/чистятся вместе по соглашению.
const (
	tokenKey = "gameguild/token"
	userKey  = "gameguild/user"
)

// Store персистит сессию {token, user} поверх key-value хранилища
type Store struct {
	kv storage.KVStore
}

// NewStore создает session store поверх переданного хранилища
func NewStore(kv storage.KVStore) *Store {
	return &Store{kv: kv}
}

// Save записывает обе записи сессии. Пустое поле не записывается,
// а удаляется: Save с частичной сессией чистит отсутствующую половину.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	if err := s.saveToken(ctx, sess.Token); err != nil {
		return err
	}
	return s.saveUser(ctx, sess.User)
}

func (s *Store) saveToken(ctx context.Context, token string) error {
	if token == "" {
		if err := s.kv.Delete(ctx, tokenKey); err != nil {
			return fmt.Errorf("failed to clear stored token: %w", err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (s *Store) saveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		if err := s.kv.Delete(ctx, userKey); err != nil {
			return fmt.Errorf("failed to clear stored user: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// Token возвращает сохраненный токен или "" если его нет
func (s *Store) Token(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read stored token: %w", err)
	}
	return string(data), nil
}

// User возвращает сохраненного пользователя или nil если его нет.
// Fail closed: битый JSON в хранилище удаляется, возвращается nil
// без ошибки - порча кэша не должна ронять запуск приложения.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	data, err := s.kv.Get(ctx, userKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stored user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		slog.Warn("stored user is corrupt, discarding", "error", err)
		if delErr := s.kv.Delete(ctx, userKey); delErr != nil {
			return nil, fmt.Errorf("failed to discard corrupt user: %w", delErr)
		}
		return nil, nil
	}

	return &user, nil
}

// Load читает обе записи сессии
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return models.Session{}, err
	}
	user, err := s.User(ctx)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{Token: token, User: user}, nil
}

// Clear удаляет обе записи сессии
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear stored token: %w", err)
	}
	if err := s.kv.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("failed to clear stored user: %w", err)
	}
	return nil
}
