package services

import (
	"context"
	"fmt"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

// CreateSession grants the user a live editing session on the group.
// The group and the user must exist, the user's role must be permitted
// for the group's model, and the user must not already hold a session
// there. The remote session id is minted with a validity window of
// now + TTL.
func (r *Registry) CreateSession(ctx context.Context, meetingID, groupID, userID string) (registry.Session, error) {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	g, err := r.store.GetGroup(meetingID, groupID)
	if err != nil {
		return registry.Session{}, err
	}
	if g.ID == "" {
		return registry.Session{}, errGroupNotFound(groupID)
	}

	user, err := r.store.GetUser(meetingID, userID)
	if err != nil {
		return registry.Session{}, err
	}
	if user.ID == "" {
		return registry.Session{}, errors.New(fmt.Sprintf("no user %s in meeting %s", userID, meetingID), errors.NotFound())
	}

	if !registry.Permitted(g.Model, user.Role) {
		return registry.Session{}, errNotPermitted(groupID, userID)
	}

	existing, err := r.store.GetSession(meetingID, groupID, userID)
	if err != nil {
		return registry.Session{}, err
	}
	if existing.ID != "" {
		return registry.Session{}, errSessionExists(groupID, userID)
	}

	validUntil := r.clock().Add(r.sessionTTL)
	sessionID, err := r.api.CreateSession(ctx, groupID, user.AuthorID, validUntil)
	if err != nil {
		return registry.Session{}, errRemote("createSession", err)
	}

	session := registry.Session{UserID: userID, ID: sessionID, ValidUntil: validUntil}
	if err := r.store.UpsertSession(meetingID, groupID, &session); err != nil {
		return registry.Session{}, err
	}

	r.sender.Publish(registry.EventSessionCreated, meetingID, registry.SessionCreatedPayload{
		GroupID:   groupID,
		UserID:    userID,
		SessionID: sessionID,
	})

	return session, nil
}

// DeleteSession revokes the remote session id, then removes the
// record. The record is not optimistically removed: a remote failure
// leaves it in place. A missing session is a no-op.
func (r *Registry) DeleteSession(ctx context.Context, meetingID, groupID, userID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	return r.deleteSession(ctx, meetingID, groupID, userID)
}

func (r *Registry) deleteSession(ctx context.Context, meetingID, groupID, userID string) error {
	session, err := r.store.GetSession(meetingID, groupID, userID)
	if err != nil {
		return err
	}
	if session.ID == "" {
		return nil
	}

	if err := r.api.DeleteSession(ctx, session.ID); err != nil {
		return errRemote("deleteSession", err)
	}

	if err := r.store.DeleteSession(meetingID, groupID, userID); err != nil {
		return err
	}

	r.sender.Publish(registry.EventSessionDeleted, meetingID, registry.SessionDeletedPayload{
		GroupID: groupID,
		UserID:  userID,
	})

	return nil
}

// SweepExpiredSessions deletes every session whose validity window has
// passed. Failures are logged and do not stop the sweep; the first one
// is reported once every meeting has been visited.
func (r *Registry) SweepExpiredSessions(ctx context.Context) (int, error) {
	meetings, err := r.store.ListMeetings()
	if err != nil {
		return 0, err
	}

	now := r.clock()
	deleted := 0
	var firstErr error

	for _, m := range meetings {
		l := r.meetingLock(m.ID)
		l.Lock()

		groups, err := r.store.ListGroups(m.ID)
		if err != nil {
			l.Unlock()
			return deleted, err
		}

		for _, g := range groups {
			sessions, err := r.store.ListSessions(m.ID, g.ID)
			if err != nil {
				l.Unlock()
				return deleted, err
			}

			for _, s := range sessions {
				if s.ValidUntil.After(now) {
					continue
				}
				if err := r.deleteSession(ctx, m.ID, g.ID, s.UserID); err != nil {
					r.logger.Errorf("could not sweep session of user %s in group %s: %v", s.UserID, g.ID, err)
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				deleted++
			}
		}

		l.Unlock()
	}

	return deleted, firstErr
}
