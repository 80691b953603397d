package endpoints

import (
	"context"
	"net/http"

	"github.com/antobinary/bbb-pads/errors"

	"github.com/antobinary/bbb-pads/registry/services"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request")
)

type MeetingEndpoint struct {
	service *services.Registry
}

func NewMeetingEndpoint(service *services.Registry) *MeetingEndpoint {
	return &MeetingEndpoint{
		service: service,
	}
}

type CreateMeetingRequest struct {
	ID     string `json:"id"`
	Locked bool   `json:"locked"`
}

func (ep *MeetingEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(CreateMeetingRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	meeting, err := ep.service.CreateMeeting(ctx, req.ID, req.Locked)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": meeting,
	}, nil
}

func (ep *MeetingEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	meeting, err := ep.service.Meeting(id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": meeting,
	}, nil
}

func (ep *MeetingEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	meetings, err := ep.service.Meetings()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": meetings,
	}, nil
}

func (ep *MeetingEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeleteMeeting(ctx, id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *MeetingEndpoint) Lock(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.LockMeeting(ctx, id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *MeetingEndpoint) Unlock(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.UnlockMeeting(ctx, id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

// statusCoder is useful to return http responses with a status that is not 200 but is not
// an error either.
type statusCoder struct {
	code int
}

func (s statusCoder) StatusCode() int { return s.code }
