package services

import (
	"context"
	"fmt"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

// CreateGroup mints a group id on the document service and inserts the
// group. (externalID, model) is the natural key: creating it twice in
// one meeting is a conflict, detected before the remote call.
func (r *Registry) CreateGroup(ctx context.Context, meetingID, externalID string, model registry.Model) (registry.Group, error) {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return registry.Group{}, err
	}
	if m.ID == "" {
		return registry.Group{}, errMeetingNotFound(meetingID)
	}

	if !model.Valid() {
		return registry.Group{}, errors.New(fmt.Sprintf("invalid model %s", model), errors.BadRequest())
	}

	existing, err := r.store.FindGroup(meetingID, externalID, model)
	if err != nil {
		return registry.Group{}, err
	}
	if existing.ID != "" {
		return registry.Group{}, errGroupExists(externalID, model)
	}

	groupID, err := r.api.CreateGroup(ctx)
	if err != nil {
		return registry.Group{}, errRemote("createGroup", err)
	}

	group := registry.Group{ID: groupID, ExternalID: externalID, Model: model}
	if err := r.store.UpsertGroup(meetingID, &group); err != nil {
		return registry.Group{}, err
	}

	r.sender.Publish(registry.EventGroupCreated, meetingID, registry.GroupCreatedPayload{
		GroupID:    group.ID,
		ExternalID: group.ExternalID,
		Model:      group.Model,
	})

	return group, nil
}

// DeleteGroup tears down every session of the group concurrently, then
// deletes every pad synchronously (pad deletion has no remote call and
// no failure path), then removes the group. A session failure aborts
// without removing the group or any pad.
func (r *Registry) DeleteGroup(ctx context.Context, meetingID, groupID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	return r.deleteGroup(ctx, meetingID, groupID)
}

func (r *Registry) deleteGroup(ctx context.Context, meetingID, groupID string) error {
	g, err := r.store.GetGroup(meetingID, groupID)
	if err != nil {
		return err
	}
	if g.ID == "" {
		return nil
	}

	sessions, err := r.store.ListSessions(meetingID, groupID)
	if err != nil {
		return err
	}
	err = fanOut(sessions, func(s registry.Session) error {
		return r.deleteSession(ctx, meetingID, groupID, s.UserID)
	})
	if err != nil {
		return errCascade("deleteGroup", err)
	}

	pads, err := r.store.ListPads(meetingID, groupID)
	if err != nil {
		return err
	}
	for _, p := range pads {
		if err := r.deletePad(meetingID, groupID, p.ID); err != nil {
			return err
		}
	}

	return r.store.DeleteGroup(meetingID, groupID)
}
