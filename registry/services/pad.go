package services

import (
	"context"

	"github.com/antobinary/bbb-pads/registry"
)

// CreatePad creates the pad under the group on the document service
// and inserts it. The pad id is derived (groupID + "$" + name), so a
// duplicate name is detected before any remote call.
func (r *Registry) CreatePad(ctx context.Context, meetingID, groupID, name string) (registry.Pad, error) {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	g, err := r.store.GetGroup(meetingID, groupID)
	if err != nil {
		return registry.Pad{}, err
	}
	if g.ID == "" {
		return registry.Pad{}, errGroupNotFound(groupID)
	}

	padID := registry.PadID(groupID, name)
	existing, err := r.store.GetPad(meetingID, groupID, padID)
	if err != nil {
		return registry.Pad{}, err
	}
	if existing.ID != "" {
		return registry.Pad{}, errPadExists(padID)
	}

	if err := r.api.CreateGroupPad(ctx, groupID, name); err != nil {
		return registry.Pad{}, errRemote("createGroupPad", err)
	}

	if err := r.mapper.RegisterPad(meetingID, groupID, padID); err != nil {
		return registry.Pad{}, err
	}

	pad := registry.Pad{ID: padID, Name: name}
	if err := r.store.UpsertPad(meetingID, groupID, &pad); err != nil {
		return registry.Pad{}, err
	}

	r.sender.Publish(registry.EventPadCreated, meetingID, registry.PadCreatedPayload{
		GroupID: groupID,
		PadID:   padID,
		Name:    name,
	})

	return pad, nil
}

// DeletePad removes the mapper entry and the pad record. No remote
// call, no failure path: a missing pad is a no-op.
func (r *Registry) DeletePad(ctx context.Context, meetingID, groupID, padID string) error {
	l := r.meetingLock(meetingID)
	l.Lock()
	defer l.Unlock()

	return r.deletePad(meetingID, groupID, padID)
}

func (r *Registry) deletePad(meetingID, groupID, padID string) error {
	pad, err := r.store.GetPad(meetingID, groupID, padID)
	if err != nil {
		return err
	}
	if pad.ID == "" {
		return nil
	}

	if err := r.mapper.UnregisterPad(padID); err != nil {
		return err
	}
	return r.store.DeletePad(meetingID, groupID, padID)
}

// UpdatePad is the ingestion point for edit notifications coming back
// from the document service. It resolves the pad and author through
// the mapper, overwrites the pad's last edit and publishes padUpdated.
// No remote call is made.
func (r *Registry) UpdatePad(ctx context.Context, padID, authorID string, rev int, changeset string) (registry.Pad, error) {
	ref, err := r.mapper.ResolvePad(padID)
	if err != nil {
		return registry.Pad{}, err
	}
	if ref.MeetingID == "" {
		return registry.Pad{}, errPadNotFound(padID)
	}

	userRef, err := r.mapper.ResolveUser(authorID)
	if err != nil {
		return registry.Pad{}, err
	}
	if userRef.UserID == "" {
		return registry.Pad{}, errAuthorNotFound(authorID)
	}

	l := r.meetingLock(ref.MeetingID)
	l.Lock()
	defer l.Unlock()

	pad, err := r.store.GetPad(ref.MeetingID, ref.GroupID, padID)
	if err != nil {
		return registry.Pad{}, err
	}
	if pad.ID == "" {
		return registry.Pad{}, errPadNotFound(padID)
	}

	pad.Last = &registry.PadEdit{UserID: userRef.UserID, Rev: rev, Changeset: changeset}
	if err := r.store.UpsertPad(ref.MeetingID, ref.GroupID, &pad); err != nil {
		return registry.Pad{}, err
	}

	r.sender.Publish(registry.EventPadUpdated, ref.MeetingID, registry.PadUpdatedPayload{
		GroupID:   ref.GroupID,
		PadID:     padID,
		UserID:    userRef.UserID,
		Rev:       rev,
		Changeset: changeset,
	})

	return pad, nil
}
