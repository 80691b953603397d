package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry"
	"github.com/antobinary/bbb-pads/registry/inmem"
	"github.com/antobinary/bbb-pads/registry/services"
)

type stubAPI struct{}

func (stubAPI) CreateAuthor(ctx context.Context, name string) (string, error) { return "a1", nil }
func (stubAPI) CreateGroup(ctx context.Context) (string, error)               { return "g1", nil }
func (stubAPI) CreateGroupPad(ctx context.Context, groupID, name string) error {
	return nil
}
func (stubAPI) CreateSession(ctx context.Context, groupID, authorID string, validUntil time.Time) (string, error) {
	return "s1", nil
}
func (stubAPI) DeleteSession(ctx context.Context, sessionID string) error { return nil }

type nopSender struct{}

func (nopSender) Publish(event, meetingID string, payload interface{}) {}

func TestJanitor_Sweep(t *testing.T) {
	ctx := context.Background()
	service := services.NewRegistry(inmem.NewStore(), stubAPI{}, inmem.NewMapper(), nopSender{}, log.New("dev"))

	_, err := service.CreateMeeting(ctx, "m1", false)
	require.NoError(t, err)
	group, err := service.CreateGroup(ctx, "m1", "ext", registry.ModelNotes)
	require.NoError(t, err)
	_, err = service.CreateUser(ctx, "m1", registry.User{ID: "u1", Name: "Alice", Role: registry.RoleModerator})
	require.NoError(t, err)

	// A nanosecond TTL expires the session before the sweep runs.
	service.SetSessionTTL(time.Nanosecond)
	_, err = service.CreateSession(ctx, "m1", group.ID, "u1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	janitor := NewJanitor(service, log.New("dev"))
	require.NoError(t, janitor.Sweep(ctx))

	sessions, err := service.Sessions("m1", group.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions, "expired session should be swept")

	// Nothing left to sweep.
	require.NoError(t, janitor.Sweep(ctx))
}
