package registry

import (
	"time"
)

// Role of a user inside a meeting.
type Role string

const (
	RoleModerator Role = "MODERATOR"
	RoleViewer    Role = "VIEWER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleModerator || r == RoleViewer
}

// Model is the kind of a group. It determines which roles may hold a
// session on the group (see permissions.go).
type Model string

const (
	ModelNotes    Model = "notes"
	ModelCaptions Model = "captions"
)

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool {
	return m == ModelNotes || m == ModelCaptions
}

// Meeting is the root entity. Users and groups scoped under it live in
// the store, keyed by the meeting id.
type Meeting struct {
	ID     string `json:"id"`
	Locked bool   `json:"locked"`
}

// User belongs to exactly one meeting. AuthorID is minted once by the
// document service at creation time and never changes; it is the join
// key into the identity mapper.
type User struct {
	ID       string `json:"id"`
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Locked   bool   `json:"locked"`
}

// Group belongs to exactly one meeting. ID is minted by the document
// service. (ExternalID, Model) is unique within a meeting and is the
// natural key used for idempotent lookup.
type Group struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Model      Model  `json:"model"`
}

// Pad belongs to exactly one group. Its id is derived, not remote
// issued: groupID + "$" + name.
type Pad struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Last *PadEdit `json:"last,omitempty"`
}

// PadEdit is the most recent edit notification received for a pad.
type PadEdit struct {
	UserID    string `json:"userId"`
	Rev       int    `json:"rev"`
	Changeset string `json:"changeset"`
}

// Session is one user's live editing grant on one group, bound to a
// token minted by the document service. At most one session per
// (group, user).
type Session struct {
	UserID     string    `json:"userId"`
	ID         string    `json:"sessionId"`
	ValidUntil time.Time `json:"validUntil"`
}

// PadID derives the composite pad id for a name under a group.
func PadID(groupID, name string) string {
	return groupID + "$" + name
}
