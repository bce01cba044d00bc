package health

import (
	"sort"
	"sync"
)

const initialRate = 100.0

// Tracker keeps a success rate per upstream endpoint. It only observes; nothing is
// retried or short-circuited based on it.
type Tracker struct {
	mu        sync.Mutex
	strategy  SuccessRateStrategy
	threshold float64
	rates     map[string]float64
	listener  Listener
}

// Listener is told when an endpoint crosses the threshold in either direction.
type Listener func(endpoint string, rate float64, degraded bool)

func NewTracker(strategy SuccessRateStrategy, threshold float64) *Tracker {
	if strategy == nil {
		strategy = NewStrategy("")
	}
	return &Tracker{
		strategy:  strategy,
		threshold: threshold,
		rates:     make(map[string]float64),
	}
}

// SetListener replaces the transition listener; nil disables it.
func (t *Tracker) SetListener(l Listener) {
	t.mu.Lock()
	t.listener = l
	t.mu.Unlock()
}

// Update records one call outcome and returns the new rate. The listener runs on the
// caller's goroutine after the lock is released.
func (t *Tracker) Update(endpoint string, success bool) float64 {
	t.mu.Lock()
	current, ok := t.rates[endpoint]
	if !ok {
		current = initialRate
	}
	next := t.strategy.Update(current, success)
	t.rates[endpoint] = next
	was, now := current < t.threshold, next < t.threshold
	listener := t.listener
	t.mu.Unlock()

	if listener != nil && was != now {
		listener(endpoint, next, now)
	}
	return next
}

// Rate is the endpoint's current rate; untouched endpoints report 100.
func (t *Tracker) Rate(endpoint string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok := t.rates[endpoint]; ok {
		return r
	}
	return initialRate
}

func (t *Tracker) Degraded(endpoint string) bool {
	return t.Rate(endpoint) < t.threshold
}

// EndpointHealth is one row of Snapshot.
type EndpointHealth struct {
	Endpoint    string  `json:"endpoint"`
	SuccessRate float64 `json:"successRate"`
	Degraded    bool    `json:"degraded"`
}

// Snapshot lists every endpoint seen so far, sorted by path.
func (t *Tracker) Snapshot() []EndpointHealth {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]EndpointHealth, 0, len(t.rates))
	for ep, r := range t.rates {
		out = append(out, EndpointHealth{Endpoint: ep, SuccessRate: r, Degraded: r < t.threshold})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Endpoint < out[j].Endpoint })
	return out
}
