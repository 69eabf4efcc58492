package entries

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

// Service - типизированная обертка над /entries ресурсом (записи бэклога)
type Service struct {
	apiClient *api.Client
}

// NewService создает сервис записей бэклога
func NewService(apiClient *api.Client) *Service {
	return &Service{apiClient: apiClient}
}

// ListOptions - опциональные фильтры списка записей
type ListOptions struct {
	Limit int
}

// Create создает запись бэклога
func (s *Service) Create(ctx context.Context, req pkgapi.CreateEntryRequest) (*models.Entry, error) {
	if req.GameID == "" {
		return nil, fmt.Errorf("game id is required")
	}

	var entry models.Entry
	if err := s.apiClient.Do(ctx, http.MethodPost, "/entries", req, &entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return &entry, nil
}

// List возвращает записи бэклога текущего пользователя
func (s *Service) List(ctx context.Context, opts ListOptions) ([]models.Entry, error) {
	path := "/entries"
	if opts.Limit > 0 {
		path += "?limit=" + strconv.Itoa(opts.Limit)
	}

	var found []models.Entry
	if err := s.apiClient.Do(ctx, http.MethodGet, path, nil, &found); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return found, nil
}

// Get возвращает запись по id
func (s *Service) Get(ctx context.Context, id string) (*models.Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry id is required")
	}

	var entry models.Entry
	if err := s.apiClient.Do(ctx, http.MethodGet, "/entries/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, fmt.Errorf("failed to fetch entry: %w", err)
	}
	return &entry, nil
}

// Update частично обновляет запись
func (s *Service) Update(ctx context.Context, id string, req pkgapi.UpdateEntryRequest) (*models.Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry id is required")
	}

	var entry models.Entry
	if err := s.apiClient.Do(ctx, http.MethodPatch, "/entries/"+url.PathEscape(id), req, &entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return &entry, nil
}

// Delete удаляет запись бэклога
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("entry id is required")
	}

	if err := s.apiClient.Do(ctx, http.MethodDelete, "/entries/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// ResolveGame дозагружает встроенный объект игры для неразрешенной ссылки.
// Разрешенные ссылки не трогаются и повторных запросов не делают.
func (s *Service) ResolveGame(ctx context.Context, entry *models.Entry) error {
	if entry.GameID.Resolved() || entry.GameID.IsZero() {
		return nil
	}

	var game models.Game
	path := "/games/" + url.PathEscape(entry.GameID.ID())
	if err := s.apiClient.Do(ctx, http.MethodGet, path, nil, &game); err != nil {
		return fmt.Errorf("failed to resolve game for entry: %w", err)
	}

	return entry.GameID.Resolve(&game)
}
