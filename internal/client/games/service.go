package games

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

// Service - типизированная обертка над /games ресурсом
type Service struct {
	apiClient *api.Client
}

// NewService создает сервис каталога игр
func NewService(apiClient *api.Client) *Service {
	return &Service{apiClient: apiClient}
}

// SearchOptions - опциональные фильтры каталога
type SearchOptions struct {
	Search   string
	Platform string
	Limit    int
}

// buildQuery собирает query string в фиксированном порядке:
// search, platform, limit
func buildQuery(opts SearchOptions) string {
	var params []string
	if opts.Search != "" {
		params = append(params, "search="+url.QueryEscape(opts.Search))
	}
	if opts.Platform != "" {
		params = append(params, "platform="+url.QueryEscape(opts.Platform))
	}
	if opts.Limit > 0 {
		params = append(params, "limit="+strconv.Itoa(opts.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}

// Create добавляет игру в каталог
func (s *Service) Create(ctx context.Context, req pkgapi.CreateGameRequest) (*models.Game, error) {
	var game models.Game
	if err := s.apiClient.Do(ctx, http.MethodPost, "/games", req, &game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// Get возвращает игру по id
func (s *Service) Get(ctx context.Context, id string) (*models.Game, error) {
	if id == "" {
		return nil, fmt.Errorf("game id is required")
	}

	var game models.Game
	if err := s.apiClient.Do(ctx, http.MethodGet, "/games/"+url.PathEscape(id), nil, &game); err != nil {
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	return &game, nil
}

// Search возвращает игры каталога с опциональными фильтрами
func (s *Service) Search(ctx context.Context, opts SearchOptions) ([]models.Game, error) {
	var found []models.Game
	if err := s.apiClient.Do(ctx, http.MethodGet, "/games"+buildQuery(opts), nil, &found); err != nil {
		return nil, fmt.Errorf("failed to search games: %w", err)
	}
	return found, nil
}

// Update частично обновляет игру
func (s *Service) Update(ctx context.Context, id string, req pkgapi.UpdateGameRequest) (*models.Game, error) {
	if id == "" {
		return nil, fmt.Errorf("game id is required")
	}

	var game models.Game
	if err := s.apiClient.Do(ctx, http.MethodPatch, "/games/"+url.PathEscape(id), req, &game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return &game, nil
}

// Delete удаляет игру из каталога
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("game id is required")
	}

	if err := s.apiClient.Do(ctx, http.MethodDelete, "/games/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
