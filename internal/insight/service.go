package insight

import (
	"context"
	"sync"
	"time"

	"tanzine/internal/logger"
	"tanzine/internal/models"
)

// Service caches the latest advice line and refreshes it in the background
// whenever the observed transaction count changes. A refresh triggered while
// another is in flight cancels the older request; the newest observation wins.
// The service only ever writes its own display field, never ledger state.
type Service struct {
	gen     Generator
	count   int
	timeout time.Duration

	mu        sync.Mutex
	advice    string
	seenCount int
	refreshed bool
	cancel    context.CancelFunc
	inflight  sync.WaitGroup
}

// NewService creates a Service that summarizes up to count recent
// transactions per prompt. gen may be nil, in which case the service always
// serves the static lines.
func NewService(gen Generator, count int, timeout time.Duration) *Service {
	return &Service{
		gen:     gen,
		count:   count,
		timeout: timeout,
		advice:  Empty,
	}
}

// Advice returns the current advice line and kicks off a background refresh
// when the transaction count moved since the last one. recent must be
// newest-first, as served by the ledger.
func (s *Service) Advice(recent []models.Transaction, totalBalance int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(recent) == 0 {
		s.advice = Empty
		s.seenCount = 0
		s.refreshed = false
		return s.advice
	}

	if s.gen != nil && (!s.refreshed || s.seenCount != len(recent)) {
		s.seenCount = len(recent)
		s.refreshed = true
		s.startRefreshLocked(recent, totalBalance)
	}

	return s.advice
}

// startRefreshLocked launches the background generation, replacing any
// in-flight request. Callers must hold s.mu.
func (s *Service) startRefreshLocked(recent []models.Transaction, totalBalance int64) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.cancel = cancel

	if s.count < len(recent) {
		recent = recent[:s.count]
	}
	prompt := BuildPrompt(recent, totalBalance)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer cancel()

		text, err := s.gen.Generate(ctx, prompt)
		if err != nil {
			if ctx.Err() == context.Canceled {
				// Replaced by a newer refresh; keep the current advice.
				return
			}
			logger.Get().Warnw("insight generation failed", "error", err)
			text = Fallback
		}

		s.mu.Lock()
		s.advice = text
		s.mu.Unlock()
	}()
}

// Wait blocks until any in-flight refresh finished. Tests use it to observe
// the refreshed advice deterministically.
func (s *Service) Wait() {
	s.inflight.Wait()
}
