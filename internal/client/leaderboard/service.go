package leaderboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
)

// Service - типизированная обертка над /leaderboard ресурсом.
// Ранжирование считает сервер, клиент только запрашивает срезы.
type Service struct {
	apiClient *api.Client
}

// NewService создает сервис таблиц лидеров
func NewService(apiClient *api.Client) *Service {
	return &Service{apiClient: apiClient}
}

// Options - опциональные параметры запроса таблицы
type Options struct {
	Limit int
}

func buildQuery(opts Options) string {
	if opts.Limit > 0 {
		return "?limit=" + strconv.Itoa(opts.Limit)
	}
	return ""
}

// Friends возвращает таблицу лидеров среди друзей
func (s *Service) Friends(ctx context.Context, opts Options) ([]models.LeaderboardRow, error) {
	var rows []models.LeaderboardRow
	if err := s.apiClient.Do(ctx, http.MethodGet, "/leaderboard/friends"+buildQuery(opts), nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch friends leaderboard: %w", err)
	}
	return rows, nil
}

// Global возвращает глобальную таблицу лидеров
func (s *Service) Global(ctx context.Context, opts Options) ([]models.LeaderboardRow, error) {
	var rows []models.LeaderboardRow
	if err := s.apiClient.Do(ctx, http.MethodGet, "/leaderboard/global"+buildQuery(opts), nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch global leaderboard: %w", err)
	}
	return rows, nil
}
