package services

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry"
)

// DefaultSessionTTL bounds the validity of remote sessions when no
// explicit TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Registry owns the entity tree and orchestrates every lifecycle
// operation against the document service. All mutations of one meeting
// subtree are serialized by a per-meeting mutex held for the whole
// operation, remote calls included; cascaded child operations run
// under the parent's lock.
type Registry struct {
	store  registry.Store
	api    registry.API
	mapper registry.Mapper
	sender registry.Sender

	logger log.Logger

	sessionTTL time.Duration
	clock      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRegistry(
	store registry.Store,
	api registry.API,
	mapper registry.Mapper,
	sender registry.Sender,
	logger log.Logger,
) *Registry {
	return &Registry{
		store:  store,
		api:    api,
		mapper: mapper,
		sender: sender,

		logger: logger,

		sessionTTL: DefaultSessionTTL,
		clock:      time.Now,

		locks: make(map[string]*sync.Mutex),
	}
}

// SetSessionTTL overrides the validity window forwarded to the remote
// createSession call.
func (r *Registry) SetSessionTTL(ttl time.Duration) {
	if ttl > 0 {
		r.sessionTTL = ttl
	}
}

// meetingLock returns the mutex serializing operations on one meeting
// subtree. Locks are kept after the meeting is deleted so that a
// concurrent operation on the same id still serializes.
func (r *Registry) meetingLock(meetingID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[meetingID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[meetingID] = l
	}
	return l
}

// fanOut runs fn for every item concurrently and waits for all of them
// to resolve before reporting the first failure. A failing child never
// cancels its siblings: the aggregate is decided only once every child
// is done.
func fanOut[T any](items []T, fn func(T) error) error {
	var g errgroup.Group
	for _, item := range items {
		item := item
		g.Go(func() error {
			return fn(item)
		})
	}
	return g.Wait()
}
