package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"cruisevoyager/shared/timezone"
)

type offlineProvider struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewOfflineProvider returns a Provider that fabricates intent identifiers
// locally, so checkout flows can be exercised without processor credentials.
func NewOfflineProvider() Provider {
	return &offlineProvider{
		rng: rand.New(rand.NewSource(timezone.Now().UnixNano())),
	}
}

func (p *offlineProvider) Enabled() bool {
	return false
}

func (p *offlineProvider) CreateIntent(_ context.Context, _ int64, _ string, _ map[string]string) (Intent, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	now := timezone.Now().UnixMilli()

	return Intent{
		ID:           fmt.Sprintf("mock_pi_%d", now),
		ClientSecret: fmt.Sprintf("mock_%d_secret_%d", now, p.rng.Int63()),
	}, nil
}

func (p *offlineProvider) ConstructEvent(payload []byte, _ string) (Event, error) {
	return parseUnverifiedEvent(payload)
}
