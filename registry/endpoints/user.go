package endpoints

import (
	"context"
	"net/http"

	"github.com/antobinary/bbb-pads/registry"
	"github.com/antobinary/bbb-pads/registry/services"
)

type UserEndpoint struct {
	service *services.Registry
}

func NewUserEndpoint(service *services.Registry) *UserEndpoint {
	return &UserEndpoint{
		service: service,
	}
}

type CreateUserRequest struct {
	MeetingID string
	User      registry.User
}

// UserRequest identifies a user for delete, lock and role changes.
type UserRequest struct {
	MeetingID string
	UserID    string
}

func (ep *UserEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(CreateUserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, err := ep.service.CreateUser(ctx, req.MeetingID, req.User)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user,
	}, nil
}

func (ep *UserEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	meetingID, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	users, err := ep.service.Users(meetingID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": users,
	}, nil
}

func (ep *UserEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeleteUser(ctx, req.MeetingID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *UserEndpoint) Lock(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.LockUser(ctx, req.MeetingID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *UserEndpoint) Unlock(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.UnlockUser(ctx, req.MeetingID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *UserEndpoint) Promote(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.PromoteUser(ctx, req.MeetingID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *UserEndpoint) Demote(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DemoteUser(ctx, req.MeetingID, req.UserID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}
