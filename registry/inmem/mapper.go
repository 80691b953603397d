package inmem

import (
	"sync"

	"github.com/antobinary/bbb-pads/registry"
)

// Mapper keeps the author and pad mappings in memory. The bolt package
// has a persistent equivalent for deployments where edit callbacks
// must survive a restart.
type Mapper struct {
	mu    sync.RWMutex
	users map[string]registry.UserRef
	pads  map[string]registry.PadRef
}

func NewMapper() *Mapper {
	return &Mapper{
		users: make(map[string]registry.UserRef),
		pads:  make(map[string]registry.PadRef),
	}
}

func (m *Mapper) RegisterUser(meetingID, userID, authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[authorID] = registry.UserRef{MeetingID: meetingID, UserID: userID}
	return nil
}

func (m *Mapper) UnregisterUser(authorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, authorID)
	return nil
}

func (m *Mapper) ResolveUser(authorID string) (registry.UserRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.users[authorID], nil
}

func (m *Mapper) RegisterPad(meetingID, groupID, padID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pads[padID] = registry.PadRef{MeetingID: meetingID, GroupID: groupID}
	return nil
}

func (m *Mapper) UnregisterPad(padID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pads, padID)
	return nil
}

func (m *Mapper) ResolvePad(padID string) (registry.PadRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.pads[padID], nil
}
