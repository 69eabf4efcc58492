package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	pkgapi "github.com/gameguild/gg-client/pkg/api"
)

const (
	// healthPath - путь liveness-пробы, никогда не требует токена
	healthPath = "/healthz"

	// authPathPrefix - эндпоинты аутентификации, токен не прикладывается
	authPathPrefix = "/auth/"
)

// Client представляет HTTP клиент для взаимодействия с GameGuild API.
// Держит единственный in-memory bearer token, устанавливаемый после
// login/register и очищаемый при logout.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu          sync.RWMutex
	accessToken string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken устанавливает bearer token для последующих запросов
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// ClearAccessToken сбрасывает bearer token
func (c *Client) ClearAccessToken() {
	c.SetAccessToken("")
}

// AccessToken возвращает текущий bearer token ("" если не установлен)
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// requestOptions - настройки одного запроса
type requestOptions struct {
	headers       http.Header
	noAuth        bool
	forceAuth     bool
	skipAuthOn401 bool
}

// RequestOption настраивает один запрос
type RequestOption func(*requestOptions)

// WithoutAuth запрещает прикладывать bearer token к запросу
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.noAuth = true }
}

// WithAuth принудительно прикладывает токен к запросу, который по правилам
// пути его не получает. Нужен /auth/logout: эндпоинт аутентификации,
// но сервер должен знать, какую сессию гасить.
func WithAuth() RequestOption {
	return func(o *requestOptions) { o.forceAuth = true }
}

// SkipAuthOn401 отключает пометку Unauthorized на ответе 401.
// Используется вызовами, для которых 401 - ожидаемый исход (logout).
func SkipAuthOn401() RequestOption {
	return func(o *requestOptions) { o.skipAuthOn401 = true }
}

// WithHeader добавляет заголовок к запросу
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

// Do выполняет HTTP запрос и декодирует успешный ответ в result.
//
// Нормализация пути: ведущий слэш добавляется при отсутствии, base URL
// уже очищен от хвостового слэша. Токен прикладывается ко всем запросам,
// кроме liveness-пробы и /auth/* (и кроме запросов с WithoutAuth).
//
// Тело: []byte и io.Reader уходят как есть (Content-Type задает вызывающий),
// string отправляется без кодирования, остальное сериализуется в JSON.
//
// Ответ: пустое тело дает нетронутый result; JSON декодируется в result
// (ошибка парсинга не фатальна - result остается нулевым); не-JSON тело
// присваивается, только если result - *string. Любой не-2xx статус
// возвращается как *RequestError.
func (c *Client) Do(ctx context.Context, method, path string, body, result any, opts ...RequestOption) error {
	var reqOpts requestOptions
	for _, opt := range opts {
		opt(&reqOpts)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.baseURL + path

	bodyReader, contentType, err := encodeBody(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, values := range reqOpts.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.shouldAttachAuth(path, reqOpts) {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newRequestError(resp.StatusCode, respBody, reqOpts.skipAuthOn401)
	}

	return decodeBody(resp, respBody, result)
}

// shouldAttachAuth решает, прикладывать ли bearer token к запросу
func (c *Client) shouldAttachAuth(path string, opts requestOptions) bool {
	if opts.noAuth {
		return false
	}
	if opts.forceAuth {
		return c.AccessToken() != ""
	}
	if path == healthPath || strings.HasPrefix(path, authPathPrefix) {
		return false
	}
	return c.AccessToken() != ""
}

// encodeBody готовит тело запроса.
// Сырые байты и ридеры передаются без изменений, строки - как есть,
// все остальное сериализуется в JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case io.Reader:
		return b, "", nil
	case string:
		return strings.NewReader(b), "", nil
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(jsonData), "application/json", nil
	}
}

// decodeBody декодирует успешный ответ в result
func decodeBody(resp *http.Response, respBody []byte, result any) error {
	if result == nil {
		return nil
	}

	// 204 и пустое тело: result остается нулевым
	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}

	if isJSONContentType(resp.Header.Get("Content-Type")) {
		// Невалидный JSON от сервера терпим: считаем ответ пустым
		if err := json.Unmarshal(respBody, result); err != nil {
			return nil
		}
		return nil
	}

	// Не-JSON тело: отдаем сырой текст, если вызывающий его ждет
	if s, ok := result.(*string); ok {
		*s = string(respBody)
	}
	return nil
}

// isJSONContentType распознает application/json с параметрами и суффиксами
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// CheckHealth выполняет неаутентифицированную liveness-пробу.
// Возвращает ошибку, если сервер недоступен или тело не {status:"ok"}.
func (c *Client) CheckHealth(ctx context.Context) error {
	var resp pkgapi.HealthResponse
	if err := c.Do(ctx, http.MethodGet, healthPath, nil, &resp, WithoutAuth()); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if resp.Status != pkgapi.HealthStatusOK {
		return fmt.Errorf("health check failed: unexpected status %q", resp.Status)
	}

	return nil
}
