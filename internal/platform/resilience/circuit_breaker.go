package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState uint8

const (
	CircuitStateClosed CircuitState = iota
	CircuitStateOpen
	CircuitStateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitStateOpen:
		return "open"
	case CircuitStateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// StateChangeFunc observes breaker transitions. It runs with the breaker's
// lock held and must not call back into the breaker.
type StateChangeFunc func(name string, from, to CircuitState)

// CircuitBreaker trips after consecutive failures of one remote host and
// lets a bounded number of probes through once the open timeout passes.
type CircuitBreaker struct {
	name     string
	cfg      CircuitBreakerConfig
	onChange StateChangeFunc
	now      func() time.Time

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig, onChange StateChangeFunc) *CircuitBreaker {
	return &CircuitBreaker{
		name:     name,
		cfg:      NormalizeCircuitBreakerConfig(cfg),
		onChange: onChange,
		now:      time.Now,
	}
}

// Execute runs fn when b admits it. Errors for which countsAsFailure returns
// false pass through without tripping the breaker. A nil breaker always
// admits.
func Execute[T any](b *CircuitBreaker, fn func() (T, error), countsAsFailure func(error) bool) (T, error) {
	if b == nil {
		return fn()
	}
	if err := b.Allow(); err != nil {
		var zero T
		return zero, err
	}

	out, err := fn()
	if err != nil && (countsAsFailure == nil || countsAsFailure(err)) {
		b.RecordFailure()
		return out, err
	}
	b.RecordSuccess()
	return out, err
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.releaseProbe()
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.releaseProbe()
		b.transition(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

// State reports half-open once the open timeout has elapsed, even before the
// next Allow performs the transition.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) releaseProbe() {
	if b.probes > 0 {
		b.probes--
	}
}

func (b *CircuitBreaker) transition(to CircuitState) {
	from := b.state
	b.state = to
	b.probes = 0
	b.successes = 0
	switch to {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
	if b.onChange != nil && from != to {
		b.onChange(b.name, from, to)
	}
}

// BreakerSet hands out one breaker per name, created on first use. It
// returns nil breakers when disabled, which Execute treats as always closed.
type BreakerSet struct {
	cfg      CircuitBreakerConfig
	onChange StateChangeFunc

	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
}

func NewBreakerSet(cfg CircuitBreakerConfig, onChange StateChangeFunc) *BreakerSet {
	return &BreakerSet{
		cfg:      cfg,
		onChange: onChange,
		breakers: make(map[string]*CircuitBreaker),
	}
}

func (s *BreakerSet) Get(name string) *CircuitBreaker {
	if s == nil || !s.cfg.Enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.breakers[name]
	if !ok {
		b = NewCircuitBreaker(name, s.cfg, s.onChange)
		s.breakers[name] = b
	}
	return b
}

// State reports closed for names that have not been used yet.
func (s *BreakerSet) State(name string) CircuitState {
	if b := s.Get(name); b != nil {
		return b.State()
	}
	return CircuitStateClosed
}
