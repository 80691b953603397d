package services

import (
	"github.com/antobinary/bbb-pads/registry"
)

// The guards are pure membership predicates over the current tree.
// They never fail: a missing ancestor is reported as false, with a
// diagnostic line for observability.

func (r *Registry) HasMeeting(meetingID string) bool {
	m, err := r.store.GetMeeting(meetingID)
	if err != nil || m.ID == "" {
		r.logger.Printf("no meeting for id %s", meetingID)
		return false
	}
	return true
}

func (r *Registry) HasUser(meetingID, userID string) bool {
	u, err := r.store.GetUser(meetingID, userID)
	if err != nil || u.ID == "" {
		r.logger.Printf("no user %s in meeting %s", userID, meetingID)
		return false
	}
	return true
}

func (r *Registry) HasGroup(meetingID, groupID string) bool {
	g, err := r.store.GetGroup(meetingID, groupID)
	if err != nil || g.ID == "" {
		r.logger.Printf("no group %s in meeting %s", groupID, meetingID)
		return false
	}
	return true
}

func (r *Registry) HasPad(meetingID, groupID, padID string) bool {
	p, err := r.store.GetPad(meetingID, groupID, padID)
	if err != nil || p.ID == "" {
		r.logger.Printf("no pad %s in group %s of meeting %s", padID, groupID, meetingID)
		return false
	}
	return true
}

func (r *Registry) HasSession(meetingID, groupID, userID string) bool {
	s, err := r.store.GetSession(meetingID, groupID, userID)
	if err != nil || s.ID == "" {
		r.logger.Printf("no session for user %s in group %s of meeting %s", userID, groupID, meetingID)
		return false
	}
	return true
}

// HasPermission reports whether the user may hold a session on the
// group: both must exist and the user's role must be listed for the
// group's model.
func (r *Registry) HasPermission(meetingID, groupID, userID string) bool {
	g, err := r.store.GetGroup(meetingID, groupID)
	if err != nil || g.ID == "" {
		r.logger.Printf("no group %s in meeting %s", groupID, meetingID)
		return false
	}

	u, err := r.store.GetUser(meetingID, userID)
	if err != nil || u.ID == "" {
		r.logger.Printf("no user %s in meeting %s", userID, meetingID)
		return false
	}

	return registry.Permitted(g.Model, u.Role)
}

// IsModerator reports whether the user exists and holds the moderator
// role.
func (r *Registry) IsModerator(meetingID, userID string) bool {
	u, err := r.store.GetUser(meetingID, userID)
	if err != nil || u.ID == "" {
		r.logger.Printf("no user %s in meeting %s", userID, meetingID)
		return false
	}
	return u.Role == registry.RoleModerator
}
