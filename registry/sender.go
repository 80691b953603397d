package registry

// Event names published by the registry after a commit.
const (
	EventGroupCreated   = "groupCreated"
	EventPadCreated     = "padCreated"
	EventPadUpdated     = "padUpdated"
	EventSessionCreated = "sessionCreated"
	EventSessionDeleted = "sessionDeleted"
)

// Sender publishes post-commit events. Publish is fire-and-forget: it
// never blocks the calling operation and never fails it.
type Sender interface {
	Publish(event, meetingID string, payload interface{})
}

type GroupCreatedPayload struct {
	GroupID    string `json:"groupId"`
	ExternalID string `json:"externalId"`
	Model      Model  `json:"model"`
}

type PadCreatedPayload struct {
	GroupID string `json:"groupId"`
	PadID   string `json:"padId"`
	Name    string `json:"name"`
}

type PadUpdatedPayload struct {
	GroupID   string `json:"groupId"`
	PadID     string `json:"padId"`
	UserID    string `json:"userId"`
	Rev       int    `json:"rev"`
	Changeset string `json:"changeset"`
}

type SessionCreatedPayload struct {
	GroupID   string `json:"groupId"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

type SessionDeletedPayload struct {
	GroupID string `json:"groupId"`
	UserID  string `json:"userId"`
}
