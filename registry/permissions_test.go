package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermitted(t *testing.T) {
	tts := []struct {
		model     Model
		role      Role
		permitted bool
	}{
		{ModelNotes, RoleModerator, true},
		{ModelNotes, RoleViewer, true},
		{ModelCaptions, RoleModerator, true},
		{ModelCaptions, RoleViewer, false},
		{Model("unknown"), RoleModerator, false},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.permitted, Permitted(tt.model, tt.role), "model %s, role %s", tt.model, tt.role)
	}
}

func TestPadID(t *testing.T) {
	assert.Equal(t, "g1$notes", PadID("g1", "notes"))
}
