package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry"
	"github.com/antobinary/bbb-pads/registry/inmem"
)

// fakeAPI mints deterministic ids and can be scripted to fail one
// method at a time.
type fakeAPI struct {
	mu      sync.Mutex
	seq     int
	failing map[string]error
	revoked []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{failing: make(map[string]error)}
}

func (a *fakeAPI) fail(method string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing[method] = err
}

func (a *fakeAPI) restore(method string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.failing, method)
}

func (a *fakeAPI) next(method, prefix string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.failing[method]; err != nil {
		return "", err
	}
	a.seq++
	return fmt.Sprintf("%s%d", prefix, a.seq), nil
}

func (a *fakeAPI) CreateAuthor(ctx context.Context, name string) (string, error) {
	return a.next("createAuthor", "a")
}

func (a *fakeAPI) CreateGroup(ctx context.Context) (string, error) {
	return a.next("createGroup", "g")
}

func (a *fakeAPI) CreateGroupPad(ctx context.Context, groupID, name string) error {
	_, err := a.next("createGroupPad", "")
	return err
}

func (a *fakeAPI) CreateSession(ctx context.Context, groupID, authorID string, validUntil time.Time) (string, error) {
	return a.next("createSession", "s")
}

func (a *fakeAPI) DeleteSession(ctx context.Context, sessionID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.failing["deleteSession"]; err != nil {
		return err
	}
	a.revoked = append(a.revoked, sessionID)
	return nil
}

func (a *fakeAPI) revokedSessions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.revoked...)
}

// recordingSender collects published events.
type recordingSender struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	name      string
	meetingID string
	payload   interface{}
}

func (s *recordingSender) Publish(event, meetingID string, payload interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{name: event, meetingID: meetingID, payload: payload})
}

func (s *recordingSender) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.events))
	for _, e := range s.events {
		names = append(names, e.name)
	}
	return names
}

func (s *recordingSender) last() recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return recordedEvent{}
	}
	return s.events[len(s.events)-1]
}

func newTestRegistry() (*Registry, *fakeAPI, *recordingSender, *inmem.Mapper) {
	api := newFakeAPI()
	sender := &recordingSender{}
	mapper := inmem.NewMapper()
	reg := NewRegistry(inmem.NewStore(), api, mapper, sender, log.New("dev"))
	return reg, api, sender, mapper
}

// seedMeeting creates a meeting with one group and one user, ready for
// session tests.
func seedMeeting(ctx context.Context, reg *Registry, meetingID string, model registry.Model, role registry.Role) (registry.Group, registry.User, error) {
	if _, err := reg.CreateMeeting(ctx, meetingID, false); err != nil {
		return registry.Group{}, registry.User{}, err
	}

	group, err := reg.CreateGroup(ctx, meetingID, "ext", model)
	if err != nil {
		return registry.Group{}, registry.User{}, err
	}

	user, err := reg.CreateUser(ctx, meetingID, registry.User{ID: "u1", Name: "Alice", Role: role})
	if err != nil {
		return registry.Group{}, registry.User{}, err
	}

	return group, user, nil
}
