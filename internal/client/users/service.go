package users

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

// Service - типизированная обертка над /users ресурсом
type Service struct {
	apiClient *api.Client
}

// NewService создает сервис пользователей
func NewService(apiClient *api.Client) *Service {
	return &Service{apiClient: apiClient}
}

// SearchOptions - опциональные фильтры поиска пользователей
type SearchOptions struct {
	Q     string
	Limit int
}

// Me возвращает профиль текущего пользователя.
// Это и есть серверная валидация токена: 401 означает мертвую сессию.
func (s *Service) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.apiClient.Do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &user, nil
}

// UpdateMe частично обновляет профиль текущего пользователя
func (s *Service) UpdateMe(ctx context.Context, req pkgapi.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.apiClient.Do(ctx, http.MethodPatch, "/users/me", req, &user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// DeleteMe удаляет аккаунт текущего пользователя
func (s *Service) DeleteMe(ctx context.Context) error {
	if err := s.apiClient.Do(ctx, http.MethodDelete, "/users/me", nil, nil); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Get возвращает пользователя по id
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id is required")
	}

	var user models.User
	if err := s.apiClient.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// Search ищет пользователей по подстроке.
// Порядок параметров фиксирован: q, limit.
func (s *Service) Search(ctx context.Context, opts SearchOptions) ([]models.User, error) {
	var params []string
	if opts.Q != "" {
		params = append(params, "q="+url.QueryEscape(opts.Q))
	}
	if opts.Limit > 0 {
		params = append(params, "limit="+strconv.Itoa(opts.Limit))
	}

	path := "/users/search"
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}

	var found []models.User
	if err := s.apiClient.Do(ctx, http.MethodGet, path, nil, &found); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return found, nil
}
