package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antobinary/bbb-pads/registry"
)

func TestGuards_NeverFail(t *testing.T) {
	reg, _, _, _ := newTestRegistry()

	// Missing ancestors are reported as false, never as an error.
	assert.False(t, reg.HasMeeting("m"))
	assert.False(t, reg.HasUser("m", "u"))
	assert.False(t, reg.HasGroup("m", "g"))
	assert.False(t, reg.HasPad("m", "g", "p"))
	assert.False(t, reg.HasSession("m", "g", "u"))
	assert.False(t, reg.HasPermission("m", "g", "u"))
	assert.False(t, reg.IsModerator("m", "u"))
}

func TestHasPermission(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	ctx := context.Background()

	group, user, err := seedMeeting(ctx, reg, "m1", registry.ModelCaptions, registry.RoleModerator)
	require.NoError(t, err)

	assert.True(t, reg.HasPermission("m1", group.ID, user.ID))
	assert.True(t, reg.IsModerator("m1", user.ID))

	require.NoError(t, reg.DemoteUser(ctx, "m1", user.ID))
	assert.False(t, reg.HasPermission("m1", group.ID, user.ID), "a viewer is not permitted on captions")
	assert.False(t, reg.IsModerator("m1", user.ID))
}
