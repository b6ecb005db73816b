package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"google.golang.org/genai"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"

	apiVersion   = "v1beta"
	apiKeyHeader = "x-goog-api-key"

	// SDK не создает клиент без ключа. Прокси авторизует запросы сам,
	// поэтому подставляется заглушка, а заголовок вырезается транспортом.
	relayKey = "relay"
)

var ErrEmptyResponse = errors.New("empty response")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client - обертка над genai.Client для вызова generateContent. Адрес по
// умолчанию можно заменить на прокси, который сам добавляет авторизацию.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
	model   string
	log     *slog.Logger

	mu      sync.Mutex
	clients map[string]*genai.Client
}

func New(cfg Config, log *slog.Logger) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	apiKey := strings.TrimSpace(cfg.APIKey)

	var transport http.RoundTripper = &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
	}
	if apiKey == "" {
		transport = stripKey{next: transport}
	}

	return &Client{
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		log:     log.With(slog.String("component", "gemini_client")),
		clients: make(map[string]*genai.Client),
	}
}

func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// Complete выполняет один запрос generateContent. Пустой baseURL означает
// адрес из конфигурации.
func (c *Client) Complete(ctx context.Context, baseURL, prompt string) (string, error) {
	client, base, err := c.client(ctx, baseURL)
	if err != nil {
		return "", err
	}

	c.log.Debug("sending request", slog.String("base_url", base), slog.String("model", c.model))

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("gemini returned status %d: %s", apiErr.Code, strings.TrimSpace(apiErr.Message))
		}
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Text()), nil
}

// client возвращает клиента SDK для адреса baseURL, создавая его при первом
// обращении.
func (c *Client) client(ctx context.Context, baseURL string) (*genai.Client, string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = c.baseURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[base]; ok {
		return client, base, nil
	}

	apiKey := c.apiKey
	if apiKey == "" {
		apiKey = relayKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.http,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    base + "/",
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create genai client: %w", err)
	}
	c.clients[base] = client
	return client, base, nil
}

// stripKey убирает ключ-заглушку из запросов к прокси.
type stripKey struct {
	next http.RoundTripper
}

func (t stripKey) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Del(apiKeyHeader)
	return t.next.RoundTrip(req)
}
