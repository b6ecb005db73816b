package comment

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/settings"
)

const DefaultTimeout = 8 * time.Second

type Outcome string

const (
	OutcomeGenerated     Outcome = "generated"
	OutcomeFallback      Outcome = "fallback"
	OutcomeMissingConfig Outcome = "missing_config"
)

// Result - итог одного обращения к генератору. Text всегда заполнен.
type Result struct {
	Text    string
	Outcome Outcome
}

// Provider - внешний сервис генерации текста.
type Provider interface {
	// Complete выполняет одну попытку запроса. baseURL пуст, если нужно
	// использовать адрес по умолчанию.
	Complete(ctx context.Context, baseURL, prompt string) (string, error)
	// HasCredential сообщает, настроен ли ключ API.
	HasCredential() bool
}

type Generator interface {
	Generate(ctx context.Context, action string, st settings.Settings) Result
}

type Service struct {
	provider Provider
	timeout  time.Duration
	pick     func(n int) int
	log      *slog.Logger
}

type Option func(*Service)

// WithPicker подменяет выбор случайной реплики.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		s.pick = pick
	}
}

func NewService(provider Provider, timeout time.Duration, log *slog.Logger, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Service{
		provider: provider,
		timeout:  timeout,
		pick:     rand.IntN,
		log:      log.With(slog.String("component", "comment_generator")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate запрашивает короткую реплику для действия. Никогда не возвращает
// ошибку и не ждет дольше таймаута: при любом сбое отдается офлайн-реплика.
func (s *Service) Generate(ctx context.Context, action string, st settings.Settings) Result {
	baseURL := strings.TrimSpace(st.CustomAPIURL)
	if s.provider == nil || (!s.provider.HasCredential() && baseURL == "") {
		return Result{Text: MissingConfigText, Outcome: OutcomeMissingConfig}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := s.provider.Complete(ctx, baseURL, Prompt(action))
		done <- reply{text: text, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			s.log.Warn("comment generation failed", slog.String("action", action), slog.String("error", r.err.Error()))
			return s.fallback()
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			text = EmptyReplyText
		}
		return Result{Text: text, Outcome: OutcomeGenerated}
	case <-ctx.Done():
		s.log.Warn("comment generation timed out", slog.String("action", action), slog.Duration("timeout", s.timeout))
		return s.fallback()
	}
}

func (s *Service) fallback() Result {
	return Result{
		Text:    Fallbacks[s.pick(len(Fallbacks))],
		Outcome: OutcomeFallback,
	}
}
