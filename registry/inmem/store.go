package inmem

import (
	"sort"
	"sync"

	"github.com/antobinary/bbb-pads/registry"
)

type groupKey struct {
	externalID string
	model      registry.Model
}

type group struct {
	meta     registry.Group
	pads     map[string]registry.Pad
	sessions map[string]registry.Session
}

type meeting struct {
	meta      registry.Meeting
	users     map[string]registry.User
	groups    map[string]*group
	groupKeys map[groupKey]string
}

// Store keeps the whole entity tree in memory. Every method locks the
// tree, so single calls are atomic; callers needing a larger critical
// section serialize above the store.
type Store struct {
	mu       sync.RWMutex
	meetings map[string]*meeting
}

func NewStore() *Store {
	return &Store{
		meetings: make(map[string]*meeting),
	}
}

func (s *Store) GetMeeting(meetingID string) (registry.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return registry.Meeting{}, nil
	}
	return m.meta, nil
}

func (s *Store) ListMeetings() ([]registry.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meetings := make([]registry.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		meetings = append(meetings, m.meta)
	}
	sort.Slice(meetings, func(i, j int) bool { return meetings[i].ID < meetings[j].ID })
	return meetings, nil
}

func (s *Store) UpsertMeeting(m *registry.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.meetings[m.ID]; ok {
		cur.meta = *m
		return nil
	}

	s.meetings[m.ID] = &meeting{
		meta:      *m,
		users:     make(map[string]registry.User),
		groups:    make(map[string]*group),
		groupKeys: make(map[groupKey]string),
	}
	return nil
}

func (s *Store) DeleteMeeting(meetingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.meetings, meetingID)
	return nil
}

func (s *Store) GetUser(meetingID, userID string) (registry.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return registry.User{}, nil
	}
	return m.users[userID], nil
}

func (s *Store) ListUsers(meetingID string) ([]registry.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return nil, nil
	}

	users := make([]registry.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) UpsertUser(meetingID string, user *registry.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}
	m.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(meetingID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.meetings[meetingID]; ok {
		delete(m.users, userID)
	}
	return nil
}

func (s *Store) GetGroup(meetingID, groupID string) (registry.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.group(meetingID, groupID)
	if !ok {
		return registry.Group{}, nil
	}
	return g.meta, nil
}

func (s *Store) FindGroup(meetingID, externalID string, model registry.Model) (registry.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return registry.Group{}, nil
	}

	groupID, ok := m.groupKeys[groupKey{externalID: externalID, model: model}]
	if !ok {
		return registry.Group{}, nil
	}
	return m.groups[groupID].meta, nil
}

func (s *Store) ListGroups(meetingID string) ([]registry.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return nil, nil
	}

	groups := make([]registry.Group, 0, len(m.groups))
	for _, g := range m.groups {
		groups = append(groups, g.meta)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *Store) UpsertGroup(meetingID string, g *registry.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}

	if cur, ok := m.groups[g.ID]; ok {
		delete(m.groupKeys, groupKey{externalID: cur.meta.ExternalID, model: cur.meta.Model})
		cur.meta = *g
	} else {
		m.groups[g.ID] = &group{
			meta:     *g,
			pads:     make(map[string]registry.Pad),
			sessions: make(map[string]registry.Session),
		}
	}
	m.groupKeys[groupKey{externalID: g.ExternalID, model: g.Model}] = g.ID
	return nil
}

func (s *Store) DeleteGroup(meetingID, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}

	if g, ok := m.groups[groupID]; ok {
		delete(m.groupKeys, groupKey{externalID: g.meta.ExternalID, model: g.meta.Model})
		delete(m.groups, groupID)
	}
	return nil
}

func (s *Store) GetPad(meetingID, groupID, padID string) (registry.Pad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.group(meetingID, groupID)
	if !ok {
		return registry.Pad{}, nil
	}
	return g.pads[padID], nil
}

func (s *Store) ListPads(meetingID, groupID string) ([]registry.Pad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.group(meetingID, groupID)
	if !ok {
		return nil, nil
	}

	pads := make([]registry.Pad, 0, len(g.pads))
	for _, p := range g.pads {
		pads = append(pads, p)
	}
	sort.Slice(pads, func(i, j int) bool { return pads[i].ID < pads[j].ID })
	return pads, nil
}

func (s *Store) UpsertPad(meetingID, groupID string, pad *registry.Pad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.group(meetingID, groupID); ok {
		g.pads[pad.ID] = *pad
	}
	return nil
}

func (s *Store) DeletePad(meetingID, groupID, padID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.group(meetingID, groupID); ok {
		delete(g.pads, padID)
	}
	return nil
}

func (s *Store) GetSession(meetingID, groupID, userID string) (registry.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.group(meetingID, groupID)
	if !ok {
		return registry.Session{}, nil
	}
	return g.sessions[userID], nil
}

func (s *Store) ListSessions(meetingID, groupID string) ([]registry.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.group(meetingID, groupID)
	if !ok {
		return nil, nil
	}

	sessions := make([]registry.Session, 0, len(g.sessions))
	for _, sess := range g.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].UserID < sessions[j].UserID })
	return sessions, nil
}

func (s *Store) UpsertSession(meetingID, groupID string, session *registry.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.group(meetingID, groupID); ok {
		g.sessions[session.UserID] = *session
	}
	return nil
}

func (s *Store) DeleteSession(meetingID, groupID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.group(meetingID, groupID); ok {
		delete(g.sessions, userID)
	}
	return nil
}

// group must be called with the store lock held.
func (s *Store) group(meetingID, groupID string) (*group, bool) {
	m, ok := s.meetings[meetingID]
	if !ok {
		return nil, false
	}
	g, ok := m.groups[groupID]
	return g, ok
}
