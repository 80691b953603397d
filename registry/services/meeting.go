package services

import (
	"context"

	"github.com/antobinary/bbb-pads/registry"
)

// CreateMeeting inserts an empty meeting. No remote call is involved:
// meetings exist only in the registry.
func (r *Registry) CreateMeeting(ctx context.Context, meetingID string, locked bool) (registry.Meeting, error) {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return registry.Meeting{}, err
	}
	if m.ID != "" {
		return registry.Meeting{}, errMeetingExists(meetingID)
	}

	meeting := registry.Meeting{ID: meetingID, Locked: locked}
	if err := r.store.UpsertMeeting(&meeting); err != nil {
		return registry.Meeting{}, err
	}

	return meeting, nil
}

// DeleteMeeting removes the meeting and everything it owns: all groups
// concurrently first, then all users, then the meeting record. A group
// failure aborts the operation and keeps the meeting, but groups that
// were already deleted stay deleted.
func (r *Registry) DeleteMeeting(ctx context.Context, meetingID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return nil
	}

	groups, err := r.store.ListGroups(meetingID)
	if err != nil {
		return err
	}
	err = fanOut(groups, func(g registry.Group) error {
		return r.deleteGroup(ctx, meetingID, g.ID)
	})
	if err != nil {
		return errCascade("deleteMeeting", err)
	}

	users, err := r.store.ListUsers(meetingID)
	if err != nil {
		return err
	}
	err = fanOut(users, func(u registry.User) error {
		return r.deleteUser(ctx, meetingID, u.ID)
	})
	if err != nil {
		return errCascade("deleteMeeting", err)
	}

	return r.store.DeleteMeeting(meetingID)
}

// LockMeeting locks every non-moderator user of the meeting, then sets
// the meeting flag. Moderators are exempt: their lockUser call is a
// no-op by role check, but the meeting flag is set regardless.
func (r *Registry) LockMeeting(ctx context.Context, meetingID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return nil
	}

	users, err := r.store.ListUsers(meetingID)
	if err != nil {
		return err
	}
	err = fanOut(users, func(u registry.User) error {
		return r.lockUser(ctx, meetingID, u.ID)
	})
	if err != nil {
		return errCascade("lockMeeting", err)
	}

	m.Locked = true
	return r.store.UpsertMeeting(&m)
}

// UnlockMeeting clears the meeting flag. There is no cascade:
// unlocking a meeting does not unlock its users.
func (r *Registry) UnlockMeeting(ctx context.Context, meetingID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return nil
	}

	m.Locked = false
	return r.store.UpsertMeeting(&m)
}
