package endpoints

import (
	"context"
	"net/http"

	"github.com/antobinary/bbb-pads/registry/services"
)

type SessionEndpoint struct {
	service *services.Registry
}

func NewSessionEndpoint(service *services.Registry) *SessionEndpoint {
	return &SessionEndpoint{
		service: service,
	}
}

type SessionRequest struct {
	MeetingID string
	GroupID   string
	UserID    string
}

func (ep *SessionEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SessionRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	session, err := ep.service.CreateSession(ctx, req.MeetingID, req.GroupID, req.UserID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": session,
	}, nil
}

func (ep *SessionEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(GroupRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	sessions, err := ep.service.Sessions(req.MeetingID, req.GroupID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": sessions,
	}, nil
}

func (ep *SessionEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SessionRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeleteSession(ctx, req.MeetingID, req.GroupID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}
