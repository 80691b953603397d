package registry

// UserRef locates a user from a remote author id.
type UserRef struct {
	MeetingID string `json:"meetingId"`
	UserID    string `json:"userId"`
}

// PadRef locates a pad's owners from a pad id.
type PadRef struct {
	MeetingID string `json:"meetingId"`
	GroupID   string `json:"groupId"`
}

// Mapper resolves the opaque ids issued by the document service back
// to registry entities. It is an independently-owned store: the
// registry only calls into it, on create and delete.
//
// Resolve methods return the zero value (and a nil error) when no
// mapping exists.
type Mapper interface {
	RegisterUser(meetingID, userID, authorID string) error
	UnregisterUser(authorID string) error
	ResolveUser(authorID string) (UserRef, error)

	RegisterPad(meetingID, groupID, padID string) error
	UnregisterPad(padID string) error
	ResolvePad(padID string) (PadRef, error)
}
