package friends

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
)

// Service - типизированная обертка над /friends ресурсом
type Service struct {
	apiClient *api.Client
}

// NewService создает сервис графа друзей
func NewService(apiClient *api.Client) *Service {
	return &Service{apiClient: apiClient}
}

// List возвращает друзей текущего пользователя
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var found []models.User
	if err := s.apiClient.Do(ctx, http.MethodGet, "/friends", nil, &found); err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return found, nil
}

// Requests возвращает входящие запросы в друзья
func (s *Service) Requests(ctx context.Context) ([]models.FriendRequest, error) {
	var found []models.FriendRequest
	if err := s.apiClient.Do(ctx, http.MethodGet, "/friends/requests", nil, &found); err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}
	return found, nil
}

// SendRequest отправляет запрос в друзья пользователю userID
func (s *Service) SendRequest(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	path := "/friends/requests/" + url.PathEscape(userID)
	if err := s.apiClient.Do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to send friend request: %w", err)
	}
	return nil
}

// AcceptRequest принимает запрос в друзья от пользователя userID
func (s *Service) AcceptRequest(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	path := "/friends/requests/" + url.PathEscape(userID) + "/accept"
	if err := s.apiClient.Do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	return nil
}

// DeclineRequest отклоняет запрос в друзья от пользователя userID
func (s *Service) DeclineRequest(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	path := "/friends/requests/" + url.PathEscape(userID) + "/decline"
	if err := s.apiClient.Do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to decline friend request: %w", err)
	}
	return nil
}
