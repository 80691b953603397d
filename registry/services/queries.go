package services

import (
	"github.com/antobinary/bbb-pads/registry"
)

// Read-only queries consumed by the HTTP surface and the tests. They
// do not take the meeting lock: the store guarantees each read is
// atomic, and these are snapshots by design.

func (r *Registry) Meeting(meetingID string) (registry.Meeting, error) {
	m, err := r.store.GetMeeting(meetingID)
	if err != nil {
		return registry.Meeting{}, err
	}
	if m.ID == "" {
		return registry.Meeting{}, errMeetingNotFound(meetingID)
	}
	return m, nil
}

func (r *Registry) Meetings() ([]registry.Meeting, error) {
	return r.store.ListMeetings()
}

func (r *Registry) Users(meetingID string) ([]registry.User, error) {
	return r.store.ListUsers(meetingID)
}

func (r *Registry) Groups(meetingID string) ([]registry.Group, error) {
	return r.store.ListGroups(meetingID)
}

func (r *Registry) Sessions(meetingID, groupID string) ([]registry.Session, error) {
	return r.store.ListSessions(meetingID, groupID)
}

func (r *Registry) Pads(meetingID, groupID string) ([]registry.Pad, error) {
	return r.store.ListPads(meetingID, groupID)
}

func (r *Registry) PadIDs(meetingID, groupID string) ([]string, error) {
	pads, err := r.store.ListPads(meetingID, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(pads))
	for _, p := range pads {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
