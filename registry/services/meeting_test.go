package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

func TestCreateMeeting(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	ctx := context.Background()

	meeting, err := reg.CreateMeeting(ctx, "m1", false)
	require.NoError(t, err, "creating a meeting must not fail")
	assert.Equal(t, registry.Meeting{ID: "m1"}, meeting)
	assert.True(t, reg.HasMeeting("m1"))

	// Creating the same id again is a conflict.
	_, err = reg.CreateMeeting(ctx, "m1", true)
	if assert.Error(t, err, "duplicate meeting should fail") {
		errors.AssertCode(t, err, 409)
	}
}

func TestDeleteMeeting_NoOpWhenMissing(t *testing.T) {
	reg, _, _, _ := newTestRegistry()

	err := reg.DeleteMeeting(context.Background(), "never-created")
	assert.NoError(t, err, "deleting an unknown meeting is a no-op")
}

func TestDeleteMeeting_Cascades(t *testing.T) {
	reg, api, _, mapper := newTestRegistry()
	ctx := context.Background()

	group, user, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)

	session, err := reg.CreateSession(ctx, "m1", group.ID, user.ID)
	require.NoError(t, err)
	_, err = reg.CreatePad(ctx, "m1", group.ID, "notes")
	require.NoError(t, err)

	require.NoError(t, reg.DeleteMeeting(ctx, "m1"))

	assert.False(t, reg.HasMeeting("m1"))
	assert.False(t, reg.HasGroup("m1", group.ID))
	assert.False(t, reg.HasUser("m1", user.ID))
	assert.Contains(t, api.revokedSessions(), session.ID, "the remote session should be revoked")

	ref, err := mapper.ResolveUser(user.AuthorID)
	require.NoError(t, err)
	assert.Empty(t, ref.UserID, "the author mapping should be gone")
}

func TestDeleteMeeting_PartialCascadeKeepsMeeting(t *testing.T) {
	reg, api, _, _ := newTestRegistry()
	ctx := context.Background()

	group, user, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)
	_, err = reg.CreateSession(ctx, "m1", group.ID, user.ID)
	require.NoError(t, err)

	// The remote revoke fails, so the group cascade fails, so the
	// meeting stays.
	api.fail("deleteSession", errors.New("etherpad is down", errors.BadGateway()))
	err = reg.DeleteMeeting(ctx, "m1")
	if assert.Error(t, err, "cascade failure should abort the meeting deletion") {
		errors.AssertCode(t, err, 500)
	}

	assert.True(t, reg.HasMeeting("m1"), "the meeting must not be removed")
	assert.True(t, reg.HasGroup("m1", group.ID), "the failing group must not be removed")
	assert.True(t, reg.HasSession("m1", group.ID, user.ID), "the session record stays on remote failure")

	// Once the remote recovers, the same call goes through: retries
	// are the caller's job and must be idempotent.
	api.restore("deleteSession")
	require.NoError(t, reg.DeleteMeeting(ctx, "m1"))
	assert.False(t, reg.HasMeeting("m1"))
}

func TestLockMeeting_ModeratorsExempt(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.CreateMeeting(ctx, "m1", false)
	require.NoError(t, err)
	_, err = reg.CreateUser(ctx, "m1", registry.User{ID: "mod", Name: "Maud", Role: registry.RoleModerator})
	require.NoError(t, err)
	_, err = reg.CreateUser(ctx, "m1", registry.User{ID: "view", Name: "Vic", Role: registry.RoleViewer})
	require.NoError(t, err)

	require.NoError(t, reg.LockMeeting(ctx, "m1"))

	meeting, err := reg.Meeting("m1")
	require.NoError(t, err)
	assert.True(t, meeting.Locked, "the meeting flag is set regardless")

	users, err := reg.Users("m1")
	require.NoError(t, err)
	for _, u := range users {
		switch u.ID {
		case "mod":
			assert.False(t, u.Locked, "moderators are exempt from the lock cascade")
		case "view":
			assert.True(t, u.Locked, "viewers get locked")
		}
	}

	// Unlock clears the flag without touching the users.
	require.NoError(t, reg.UnlockMeeting(ctx, "m1"))
	meeting, err = reg.Meeting("m1")
	require.NoError(t, err)
	assert.False(t, meeting.Locked)

	users, _ = reg.Users("m1")
	for _, u := range users {
		if u.ID == "view" {
			assert.True(t, u.Locked, "unlocking a meeting does not unlock its users")
		}
	}
}

func TestLockMeeting_NoOpWhenMissing(t *testing.T) {
	reg, _, _, _ := newTestRegistry()

	assert.NoError(t, reg.LockMeeting(context.Background(), "nope"))
	assert.NoError(t, reg.UnlockMeeting(context.Background(), "nope"))
}
