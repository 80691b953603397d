package services

import (
	"context"
	"fmt"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

// CreateUser mints an author on the document service, registers the
// authorID mapping and inserts the user. A remote failure leaves no
// partial record. The AuthorID field of the input is ignored: it is
// always remote issued.
func (r *Registry) CreateUser(ctx context.Context, meetingID string, user registry.User) (registry.User, error) {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return registry.User{}, err
	}
	if m.ID == "" {
		return registry.User{}, errMeetingNotFound(meetingID)
	}

	if !user.Role.Valid() {
		return registry.User{}, errors.New(fmt.Sprintf("invalid role %s", user.Role), errors.BadRequest())
	}

	existing, err := r.store.GetUser(meetingID, user.ID)
	if err != nil {
		return registry.User{}, err
	}
	if existing.ID != "" {
		return registry.User{}, errUserExists(meetingID, user.ID)
	}

	authorID, err := r.api.CreateAuthor(ctx, user.Name)
	if err != nil {
		return registry.User{}, errRemote("createAuthor", err)
	}
	user.AuthorID = authorID

	if err := r.mapper.RegisterUser(meetingID, user.ID, authorID); err != nil {
		return registry.User{}, err
	}
	if err := r.store.UpsertUser(meetingID, &user); err != nil {
		return registry.User{}, err
	}

	return user, nil
}

// DeleteUser tears down the user's session in every group of the
// meeting, then removes the mapper entry and the user record. A
// session failure aborts without removing the user.
func (r *Registry) DeleteUser(ctx context.Context, meetingID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	return r.deleteUser(ctx, meetingID, userID)
}

func (r *Registry) deleteUser(ctx context.Context, meetingID, userID string) error {
	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return nil
	}

	if err := r.teardownSessions(ctx, meetingID, userID, "deleteUser"); err != nil {
		return err
	}

	if err := r.mapper.UnregisterUser(user.AuthorID); err != nil {
		return err
	}
	return r.store.DeleteUser(meetingID, userID)
}

// LockUser revokes the user's sessions and sets the locked flag. It is
// a no-op for moderators and for missing users.
func (r *Registry) LockUser(ctx context.Context, meetingID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	return r.lockUser(ctx, meetingID, userID)
}

func (r *Registry) lockUser(ctx context.Context, meetingID, userID string) error {
	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return err
	}
	if user.ID == "" || user.Role == registry.RoleModerator {
		return nil
	}

	// Locking invalidates the permission check made at session
	// creation, so any live session must be revoked before the state
	// change is recorded.
	if err := r.teardownSessions(ctx, meetingID, userID, "lockUser"); err != nil {
		return err
	}

	user.Locked = true
	return r.store.UpsertUser(meetingID, &user)
}

// UnlockUser clears the locked flag. No cascade: unlocking does not
// restore a revoked session.
func (r *Registry) UnlockUser(ctx context.Context, meetingID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return nil
	}

	user.Locked = false
	return r.store.UpsertUser(meetingID, &user)
}

// PromoteUser sets the moderator role. No cascade: promotion never
// invalidates an existing session.
func (r *Registry) PromoteUser(ctx context.Context, meetingID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return nil
	}

	user.Role = registry.RoleModerator
	return r.store.UpsertUser(meetingID, &user)
}

// DemoteUser revokes the user's sessions and sets the viewer role. It
// is a no-op for missing users and for users that are not currently
// moderators.
func (r *Registry) DemoteUser(ctx context.Context, meetingID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return err
	}
	if user.ID == "" || user.Role != registry.RoleModerator {
		return nil
	}

	if err := r.teardownSessions(ctx, meetingID, userID, "demoteUser"); err != nil {
		return err
	}

	user.Role = registry.RoleViewer
	return r.store.UpsertUser(meetingID, &user)
}

// teardownSessions deletes the user's session in every group of the
// meeting, concurrently, and waits for all of them.
func (r *Registry) teardownSessions(ctx context.Context, meetingID, userID, op string) error {
	groups, err := r.store.ListGroups(meetingID)
	if err != nil {
		return err
	}

	err = fanOut(groups, func(g registry.Group) error {
		return r.deleteSession(ctx, meetingID, g.ID, userID)
	})
	if err != nil {
		return errCascade(op, err)
	}
	return nil
}
