package endpoints

import (
	"context"
	"net/http"

	"github.com/antobinary/bbb-pads/registry"
	"github.com/antobinary/bbb-pads/registry/services"
)

type GroupEndpoint struct {
	service *services.Registry
}

func NewGroupEndpoint(service *services.Registry) *GroupEndpoint {
	return &GroupEndpoint{
		service: service,
	}
}

type CreateGroupRequest struct {
	MeetingID  string
	ExternalID string
	Model      registry.Model
}

type GroupRequest struct {
	MeetingID string
	GroupID   string
}

func (ep *GroupEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(CreateGroupRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	group, err := ep.service.CreateGroup(ctx, req.MeetingID, req.ExternalID, req.Model)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": group,
	}, nil
}

func (ep *GroupEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	meetingID, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	groups, err := ep.service.Groups(meetingID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": groups,
	}, nil
}

func (ep *GroupEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(GroupRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeleteGroup(ctx, req.MeetingID, req.GroupID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}
