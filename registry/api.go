package registry

import (
	"context"
	"time"
)

// API is the remote document service. Every id it returns is an opaque
// string; the registry never generates them itself.
type API interface {
	CreateAuthor(ctx context.Context, name string) (string, error)
	CreateGroup(ctx context.Context) (string, error)
	CreateGroupPad(ctx context.Context, groupID, name string) error
	CreateSession(ctx context.Context, groupID, authorID string, validUntil time.Time) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
