// Package ticker периодически пересчитывает показатели главного экрана.
// Владелец тикера (обработчик SSE) обязан вызвать Stop при закрытии
// соединения и Restart при смене настроек; одновременно работает не больше
// одного цикла.
package ticker

import (
	"context"
	"sync"
	"time"

	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/settings"
)

const DefaultInterval = 100 * time.Millisecond

type Sampler func(st settings.Settings, now time.Time) earnings.Snapshot

type Ticker struct {
	interval time.Duration
	sample   Sampler
	emit     func(earnings.Snapshot)
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Ticker)

func WithClock(now func() time.Time) Option {
	return func(t *Ticker) {
		t.now = now
	}
}

func WithSampler(sample Sampler) Option {
	return func(t *Ticker) {
		t.sample = sample
	}
}

// New создает остановленный тикер. emit вызывается из горутины тикера.
func New(interval time.Duration, emit func(earnings.Snapshot), opts ...Option) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		interval: interval,
		sample:   earnings.Take,
		emit:     emit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start запускает цикл для настроек st. Уже работающий цикл сначала
// останавливается.
func (t *Ticker) Start(ctx context.Context, st settings.Settings) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go t.run(loopCtx, st, done)
}

// Restart - то же, что Start; имя для вызова при смене настроек.
func (t *Ticker) Restart(ctx context.Context, st settings.Settings) {
	t.Start(ctx, st)
}

// Stop останавливает цикл и дожидается его завершения. Повторный вызов безопасен.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Ticker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
}

func (t *Ticker) run(ctx context.Context, st settings.Settings, done chan struct{}) {
	defer close(done)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	t.emit(t.sample(st, t.now()))
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			t.emit(t.sample(st, t.now()))
		}
	}
}
