package registry

// Store holds the entity tree. Implementations return the zero value
// (and a nil error) when an entity is missing; callers detect a miss
// by checking the entity id.
//
// The store only guarantees that each call is atomic. Serialization of
// whole operations on a meeting subtree is the service's job, not the
// store's.
type Store interface {
	GetMeeting(meetingID string) (Meeting, error)
	ListMeetings() ([]Meeting, error)
	UpsertMeeting(*Meeting) error
	DeleteMeeting(meetingID string) error

	GetUser(meetingID, userID string) (User, error)
	ListUsers(meetingID string) ([]User, error)
	UpsertUser(meetingID string, user *User) error
	DeleteUser(meetingID, userID string) error

	GetGroup(meetingID, groupID string) (Group, error)
	// FindGroup looks a group up by its natural key.
	FindGroup(meetingID, externalID string, model Model) (Group, error)
	ListGroups(meetingID string) ([]Group, error)
	UpsertGroup(meetingID string, group *Group) error
	DeleteGroup(meetingID, groupID string) error

	GetPad(meetingID, groupID, padID string) (Pad, error)
	ListPads(meetingID, groupID string) ([]Pad, error)
	UpsertPad(meetingID, groupID string, pad *Pad) error
	DeletePad(meetingID, groupID, padID string) error

	GetSession(meetingID, groupID, userID string) (Session, error)
	ListSessions(meetingID, groupID string) ([]Session, error)
	UpsertSession(meetingID, groupID string, session *Session) error
	DeleteSession(meetingID, groupID, userID string) error
}
