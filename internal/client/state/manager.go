// Package state держит общеклиентское состояние аутентификации:
// текущий пользователь, токен, готовность, здоровье сервера. Оркестрирует
// запуск (health-проба + восстановление сессии параллельно) и предоставляет
// императивные операции для интерфейса.
package state

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/client/auth"
	"github.com/gameguild/gg-client/internal/models"
	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

// Health - статус доступности сервера по результатам liveness-пробы
type Health string

const (
	HealthUnknown Health = "unknown" // проба еще не завершилась
	HealthOK      Health = "ok"
	HealthError   Health = "error"
	HealthDev     Health = "dev" // dev bypass, проба не выполнялась
)

//go:generate go tool moq -out services_mock.go . AuthService UsersService HealthChecker SessionSaver

// AuthService - операции авторизации, нужные менеджеру состояния
type AuthService interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*auth.Result, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*auth.Result, error)
	Logout(ctx context.Context) error
	LoadStoredSession(ctx context.Context) (models.Session, error)
}

// UsersService - операции над текущим пользователем
type UsersService interface {
	Me(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, req pkgapi.UpdateProfileRequest) (*models.User, error)
	DeleteMe(ctx context.Context) error
}

// HealthChecker - liveness-проба сервера
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// SessionSaver - персистентность сессии для re-persist после refresh/update
type SessionSaver interface {
	Save(ctx context.Context, sess models.Session) error
}

// State - снимок состояния аутентификации.
// Инвариант: Authenticated() истинно только при наличии и токена,
// и пользователя (не считая dev bypass).
type State struct {
	User      *models.User
	Token     string
	Err       error
	Health    Health
	Ready     bool
	Loading   bool
	DevBypass bool
}

// Authenticated - производное значение: токен и пользователь оба присутствуют
func (s State) Authenticated() bool {
	if s.DevBypass {
		return true
	}
	return s.Token != "" && s.User != nil
}

// Manager владеет состоянием аутентификации процесса.
// Все поля за мьютексом; снаружи состояние видно только через Snapshot.
type Manager struct {
	authSvc   AuthService
	users     UsersService
	health    HealthChecker
	sessions  SessionSaver
	devBypass bool

	mu      sync.Mutex
	user    *models.User
	token   string
	err     error
	status  Health
	ready   bool
	loading bool
}

// NewManager создает менеджер состояния.
// devBypass принудительно включает аутентифицированное состояние без
// реальных учетных данных - только для локальной разработки.
func NewManager(authSvc AuthService, users UsersService, health HealthChecker, sessions SessionSaver, devBypass bool) *Manager {
	return &Manager{
		authSvc:   authSvc,
		users:     users,
		health:    health,
		sessions:  sessions,
		devBypass: devBypass,
		status:    HealthUnknown,
	}
}

// Snapshot возвращает текущий снимок состояния
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		User:      m.user,
		Token:     m.token,
		Err:       m.err,
		Health:    m.status,
		Ready:     m.ready,
		Loading:   m.loading,
		DevBypass: m.devBypass,
	}
}

// Bootstrap выполняет стартовую последовательность: health-проба и
// восстановление сессии запускаются параллельно и пишут в непересекающиеся
// поля состояния. Готовность (Ready) выставляется по завершении ветки
// восстановления независимо от исхода пробы - проба не должна блокировать
// первый рендер.
func (m *Manager) Bootstrap(ctx context.Context) {
	if m.devBypass {
		m.mu.Lock()
		m.user = &models.User{ID: uuid.New().String(), Username: "dev-user"}
		m.token = ""
		m.status = HealthDev
		m.ready = true
		m.mu.Unlock()
		slog.Warn("dev auth bypass enabled, skipping bootstrap")
		return
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m.probeHealth(gctx)
		return nil
	})
	g.Go(func() error {
		m.restoreSession(gctx)
		return nil
	})

	// Ветки не возвращают ошибок - все исходы записаны в состояние
	_ = g.Wait()
}

// probeHealth выполняет liveness-пробу и записывает ее исход
func (m *Manager) probeHealth(ctx context.Context) {
	if err := m.health.CheckHealth(ctx); err != nil {
		slog.Warn("health probe failed", "error", err)
		m.mu.Lock()
		m.status = HealthError
		m.err = err
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.status = HealthOK
	m.mu.Unlock()
}

// restoreSession восстанавливает сессию из хранилища и валидирует токен
// против сервера. Порядок внутри ветки строго последовательный: чтение
// токена предшествует валидации, валидация зависит от токена.
func (m *Manager) restoreSession(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.ready = true
		m.mu.Unlock()
	}()

	sess, err := m.authSvc.LoadStoredSession(ctx)
	if err != nil {
		slog.Warn("failed to load stored session", "error", err)
		m.mu.Lock()
		m.err = err
		m.mu.Unlock()
		return
	}

	if sess.Token == "" {
		return
	}

	// Оптимистично показываем закэшированную сессию до ответа сервера
	m.mu.Lock()
	m.token = sess.Token
	if sess.User != nil {
		m.user = sess.User
	}
	m.mu.Unlock()

	me, err := m.users.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) || api.StatusOf(err) == http.StatusUnauthorized {
			// Токен мертв - чистим состояние и хранилище
			slog.Info("stored token rejected by server, logging out")
			m.logoutCleanup(ctx)
			return
		}
		// Временный сбой: оптимистичное состояние остается, ошибка записана
		slog.Warn("failed to validate stored session", "error", err)
		m.mu.Lock()
		m.err = err
		m.mu.Unlock()
		return
	}

	// Токен валиден: обновляем кэш свежим профилем
	m.mu.Lock()
	m.user = me
	m.mu.Unlock()

	if err := m.sessions.Save(ctx, models.Session{Token: sess.Token, User: me}); err != nil {
		slog.Warn("failed to re-persist refreshed session", "error", err)
	}
}

// logoutCleanup - безусловная очистка: хранилище, in-memory токен, состояние
func (m *Manager) logoutCleanup(ctx context.Context) {
	if err := m.authSvc.Logout(ctx); err != nil {
		slog.Warn("logout cleanup failed", "error", err)
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

// beginOp поднимает loading-флаг и сбрасывает прошлую ошибку
func (m *Manager) beginOp() {
	m.mu.Lock()
	m.loading = true
	m.err = nil
	m.mu.Unlock()
}

// endOp опускает loading-флаг и записывает итог операции
func (m *Manager) endOp(err error) {
	m.mu.Lock()
	m.loading = false
	if err != nil {
		m.err = err
	}
	m.mu.Unlock()
}

// Login выполняет вход и переводит состояние в аутентифицированное.
// Ошибка записывается в состояние и возвращается вызывающему.
func (m *Manager) Login(ctx context.Context, req pkgapi.LoginRequest) (*models.User, error) {
	m.beginOp()

	result, err := m.authSvc.Login(ctx, req)
	if err != nil {
		m.endOp(err)
		return nil, err
	}

	m.mu.Lock()
	m.token = result.AccessToken
	m.user = result.User
	m.mu.Unlock()

	m.endOp(nil)
	return result.User, nil
}

// Register регистрирует пользователя и переводит состояние в аутентифицированное
func (m *Manager) Register(ctx context.Context, req pkgapi.RegisterRequest) (*models.User, error) {
	m.beginOp()

	result, err := m.authSvc.Register(ctx, req)
	if err != nil {
		m.endOp(err)
		return nil, err
	}

	m.mu.Lock()
	m.token = result.AccessToken
	m.user = result.User
	m.mu.Unlock()

	m.endOp(nil)
	return result.User, nil
}

// Logout выполняет выход. Состояние очищается всегда, даже если сервер
// недоступен; 401 сервис уже проглотил как безобидный no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.beginOp()

	err := m.authSvc.Logout(ctx)

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.endOp(err)
	return err
}

// RefreshUser перечитывает профиль с сервера и re-персистит пару сессии
func (m *Manager) RefreshUser(ctx context.Context) (*models.User, error) {
	m.beginOp()

	me, err := m.users.Me(ctx)
	if err != nil {
		m.endOp(err)
		return nil, err
	}

	m.mu.Lock()
	m.user = me
	token := m.token
	m.mu.Unlock()

	if err := m.sessions.Save(ctx, models.Session{Token: token, User: me}); err != nil {
		slog.Warn("failed to re-persist refreshed session", "error", err)
	}

	m.endOp(nil)
	return me, nil
}

// UpdateProfile обновляет профиль на сервере и в состоянии
func (m *Manager) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*models.User, error) {
	m.beginOp()

	updated, err := m.users.UpdateMe(ctx, req)
	if err != nil {
		m.endOp(err)
		return nil, err
	}

	m.mu.Lock()
	m.user = updated
	token := m.token
	m.mu.Unlock()

	if err := m.sessions.Save(ctx, models.Session{Token: token, User: updated}); err != nil {
		slog.Warn("failed to re-persist updated session", "error", err)
	}

	m.endOp(nil)
	return updated, nil
}

// DeleteAccount удаляет аккаунт на сервере, затем выполняет полную очистку
func (m *Manager) DeleteAccount(ctx context.Context) error {
	m.beginOp()

	if err := m.users.DeleteMe(ctx); err != nil {
		m.endOp(err)
		return err
	}

	m.logoutCleanup(ctx)
	m.endOp(nil)
	return nil
}
