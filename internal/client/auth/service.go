package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/models"
	"github.com/gameguild/gg-client/internal/validation"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

// Эндпоинты аутентификации
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	logoutPath   = "/auth/logout"
)

// ErrInvalidAuthResponse возвращается, если login/register ответ сервера
// не содержит accessToken или user. Ничего не персистится в этом случае.
var ErrInvalidAuthResponse = errors.New("invalid auth response")

// SessionStore определяет хранилище сессии, используемое auth сервисом
type SessionStore interface {
	Save(ctx context.Context, sess models.Session) error
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// Result содержит результат успешного login/register
type Result struct {
	AccessToken string
	User        *models.User
}

// Service предоставляет функции авторизации: обмен учетных данных на
// сессию через API и персистентность сессии между запусками.
type Service struct {
	apiClient *api.Client
	sessions  SessionStore
}

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, sessions SessionStore) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// Login выполняет аутентификацию пользователя.
// На успех сессия персистится и in-memory токен обновляется.
func (s *Service) Login(ctx context.Context, req pkgapi.LoginRequest) (*Result, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	var resp pkgapi.AuthResponse
	err := s.apiClient.Do(ctx, http.MethodPost, loginPath, req, &resp, api.WithoutAuth())
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.acceptAuthResponse(ctx, resp)
}

// Register регистрирует нового пользователя.
// Учетные данные валидируются локально до сетевого вызова.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*Result, error) {
	if err := validation.ValidateUsername(req.Username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	var resp pkgapi.AuthResponse
	err := s.apiClient.Do(ctx, http.MethodPost, registerPath, req, &resp, api.WithoutAuth())
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.acceptAuthResponse(ctx, resp)
}

// acceptAuthResponse валидирует форму ответа, персистит сессию
// и обновляет in-memory токен. Порядок существенен: невалидный ответ
// не должен оставить частично записанную сессию.
func (s *Service) acceptAuthResponse(ctx context.Context, resp pkgapi.AuthResponse) (*Result, error) {
	if resp.AccessToken == "" || len(resp.User) == 0 {
		return nil, ErrInvalidAuthResponse
	}

	var user models.User
	if err := json.Unmarshal(resp.User, &user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthResponse, err)
	}
	if user.ID == "" {
		return nil, ErrInvalidAuthResponse
	}

	if err := s.sessions.Save(ctx, models.Session{Token: resp.AccessToken, User: &user}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.apiClient.SetAccessToken(resp.AccessToken)

	return &Result{AccessToken: resp.AccessToken, User: &user}, nil
}

// Logout выполняет выход из системы.
// 401 от сервера - не ошибка: сессия уже невалидна. Локальная очистка
// (хранилище + in-memory токен) выполняется безусловно, даже если
// сервер недоступен.
func (s *Service) Logout(ctx context.Context) error {
	logoutErr := s.apiClient.Do(ctx, http.MethodPost, logoutPath, nil, nil,
		api.WithAuth(), api.SkipAuthOn401())

	if logoutErr != nil {
		if api.StatusOf(logoutErr) == http.StatusUnauthorized {
			// Сессия уже погашена на сервере
			slog.Debug("logout returned unauthorized, ignoring", "error", logoutErr)
			logoutErr = nil
		} else {
			slog.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	// Всегда чистим локальное состояние, даже если сервер недоступен
	s.apiClient.ClearAccessToken()
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return logoutErr
}

// LoadStoredSession читает закэшированную сессию и, если токен найден,
// устанавливает его как in-memory токен для последующих запросов.
// Валидность токена против сервера проверяет вызывающий.
func (s *Service) LoadStoredSession(ctx context.Context) (models.Session, error) {
	var (
		token string
		user  *models.User
	)

	// Токен и пользователь - независимые записи, читаем параллельно
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		token, err = s.sessions.Token(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.sessions.User(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Session{}, fmt.Errorf("failed to load stored session: %w", err)
	}

	if token != "" {
		s.apiClient.SetAccessToken(token)
	}

	return models.Session{Token: token, User: user}, nil
}
