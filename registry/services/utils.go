package services

import (
	"fmt"

	"github.com/antobinary/bbb-pads/errors"
	"github.com/antobinary/bbb-pads/registry"
)

// errMeetingNotFound returns a 404 for when a meeting could not be found.
func errMeetingNotFound(id string) error {
	return errors.New(fmt.Sprintf("no meeting for id %s", id), errors.NotFound())
}

// errMeetingExists returns a 409 for when a meeting id is already taken.
func errMeetingExists(id string) error {
	return errors.New(fmt.Sprintf("meeting %s already exists", id), errors.Conflict())
}

// errUserExists returns a 409 for when a user id is already taken.
func errUserExists(meetingID, userID string) error {
	return errors.New(fmt.Sprintf("user %s already exists in meeting %s", userID, meetingID), errors.Conflict())
}

// errGroupExists returns a 409 for when a group natural key is already taken.
func errGroupExists(externalID string, model registry.Model) error {
	return errors.New(fmt.Sprintf("group (%s, %s) already exists", externalID, model), errors.Conflict())
}

// errGroupNotFound returns a 404 for when a group could not be found.
func errGroupNotFound(id string) error {
	return errors.New(fmt.Sprintf("no group for id %s", id), errors.NotFound())
}

// errPadExists returns a 409 for when a pad id is already taken.
func errPadExists(id string) error {
	return errors.New(fmt.Sprintf("pad %s already exists", id), errors.Conflict())
}

// errPadNotFound returns a 404 for when a pad id cannot be resolved.
func errPadNotFound(id string) error {
	return errors.New(fmt.Sprintf("no pad for id %s", id), errors.NotFound())
}

// errAuthorNotFound returns a 404 for when an author id cannot be resolved.
func errAuthorNotFound(id string) error {
	return errors.New(fmt.Sprintf("no user for author id %s", id), errors.NotFound())
}

// errSessionExists returns a 409 for when a user already holds a
// session on the group.
func errSessionExists(groupID, userID string) error {
	return errors.New(fmt.Sprintf("user %s already has a session in group %s", userID, groupID), errors.Conflict())
}

// errNotPermitted returns a 403 for when the user's role is not
// allowed to hold a session on the group's model.
func errNotPermitted(groupID, userID string) error {
	return errors.New(fmt.Sprintf("user %s is not permitted on group %s", userID, groupID), errors.Forbidden())
}

// errRemote returns a 502 wrapping a failed document-service call.
func errRemote(call string, cause error) error {
	return errors.New(fmt.Sprintf("remote call %s failed", call), errors.BadGateway(), errors.WithCause(cause))
}

// errCascade returns a 500 wrapping the first child failure of a
// fan-out. Siblings that succeeded stay committed.
func errCascade(op string, cause error) error {
	return errors.New(fmt.Sprintf("cascade failed during %s", op), errors.WithCause(cause))
}
