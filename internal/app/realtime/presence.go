package realtime

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Presence is the set of users shown as online. It never broadcasts on its own.
type Presence struct {
	mu     sync.RWMutex
	online map[string]struct{}
}

func NewPresence() *Presence {
	return &Presence{online: make(map[string]struct{})}
}

func (p *Presence) MarkPresent(identity string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.online[identity] = struct{}{}
}

func (p *Presence) MarkAbsent(identity string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.online, identity)
}

func (p *Presence) Contains(identity string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.online[identity]
	return ok
}

// Snapshot returns the online identities sorted.
func (p *Presence) Snapshot() []string {
	p.mu.RLock()
	ids := lo.Keys(p.online)
	p.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
