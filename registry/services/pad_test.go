package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

func TestCreatePad(t *testing.T) {
	reg, _, sender, mapper := newTestRegistry()
	ctx := context.Background()

	group, _, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)

	_, err = reg.CreatePad(ctx, "m1", "ghost", "notes")
	if assert.Error(t, err, "creating a pad in a missing group should fail") {
		errors.AssertCode(t, err, 404)
	}

	pad, err := reg.CreatePad(ctx, "m1", group.ID, "notes")
	require.NoError(t, err, "creating a pad must not fail")
	assert.Equal(t, group.ID+"$notes", pad.ID, "the pad id is derived, not remote issued")
	assert.Contains(t, sender.names(), registry.EventPadCreated)

	ref, err := mapper.ResolvePad(pad.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.PadRef{MeetingID: "m1", GroupID: group.ID}, ref)

	_, err = reg.CreatePad(ctx, "m1", group.ID, "notes")
	if assert.Error(t, err, "duplicate pad name should fail") {
		errors.AssertCode(t, err, 409)
	}
}

func TestCreatePad_RemoteFailureLeavesNoRecord(t *testing.T) {
	reg, api, _, _ := newTestRegistry()
	ctx := context.Background()

	group, _, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)

	api.fail("createGroupPad", errors.New("etherpad is down"))
	_, err = reg.CreatePad(ctx, "m1", group.ID, "notes")
	if assert.Error(t, err) {
		errors.AssertCode(t, err, 502)
	}
	assert.False(t, reg.HasPad("m1", group.ID, group.ID+"$notes"))
}

func TestDeletePad(t *testing.T) {
	reg, _, _, mapper := newTestRegistry()
	ctx := context.Background()

	group, _, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)
	pad, err := reg.CreatePad(ctx, "m1", group.ID, "notes")
	require.NoError(t, err)

	require.NoError(t, reg.DeletePad(ctx, "m1", group.ID, pad.ID))
	assert.False(t, reg.HasPad("m1", group.ID, pad.ID))

	ref, err := mapper.ResolvePad(pad.ID)
	require.NoError(t, err)
	assert.Empty(t, ref.GroupID)

	// Deleting a missing pad is a no-op.
	assert.NoError(t, reg.DeletePad(ctx, "m1", group.ID, pad.ID))
}

func TestUpdatePad_RoundTrip(t *testing.T) {
	reg, _, sender, _ := newTestRegistry()
	ctx := context.Background()

	group, user, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)
	pad, err := reg.CreatePad(ctx, "m1", group.ID, "n")
	require.NoError(t, err)
	require.Equal(t, group.ID+"$n", pad.ID)

	updated, err := reg.UpdatePad(ctx, pad.ID, user.AuthorID, 3, "C")
	require.NoError(t, err, "updating through the mapper must not fail")
	require.NotNil(t, updated.Last)
	assert.Equal(t, registry.PadEdit{UserID: user.ID, Rev: 3, Changeset: "C"}, *updated.Last)

	last := sender.last()
	assert.Equal(t, registry.EventPadUpdated, last.name)
	assert.Equal(t, "m1", last.meetingID)
	assert.Equal(t, registry.PadUpdatedPayload{
		GroupID:   group.ID,
		PadID:     pad.ID,
		UserID:    user.ID,
		Rev:       3,
		Changeset: "C",
	}, last.payload)
}

func TestUpdatePad_UnresolvedIDs(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	ctx := context.Background()

	group, user, err := seedMeeting(ctx, reg, "m1", registry.ModelNotes, registry.RoleModerator)
	require.NoError(t, err)
	pad, err := reg.CreatePad(ctx, "m1", group.ID, "n")
	require.NoError(t, err)

	_, err = reg.UpdatePad(ctx, "unknown$pad", user.AuthorID, 1, "C")
	if assert.Error(t, err, "an unmapped pad id should fail") {
		errors.AssertCode(t, err, 404)
	}

	_, err = reg.UpdatePad(ctx, pad.ID, "unknown-author", 1, "C")
	if assert.Error(t, err, "an unmapped author id should fail") {
		errors.AssertCode(t, err, 404)
	}
}
