package endpoints

import (
	"context"
	"net/http"

	"github.com/antobinary/bbb-pads/registry/services"
)

type PadEndpoint struct {
	service *services.Registry
}

func NewPadEndpoint(service *services.Registry) *PadEndpoint {
	return &PadEndpoint{
		service: service,
	}
}

type CreatePadRequest struct {
	MeetingID string
	GroupID   string
	Name      string
}

type PadRequest struct {
	MeetingID string
	GroupID   string
	PadID     string
}

// UpdatePadRequest carries an edit callback. The pad and author are
// identified by the ids the document service issued, not by registry
// ids: the service resolves them through the mapper.
type UpdatePadRequest struct {
	PadID     string `json:"padId"`
	AuthorID  string `json:"authorId"`
	Rev       int    `json:"rev"`
	Changeset string `json:"changeset"`
}

func (ep *PadEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(CreatePadRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	pad, err := ep.service.CreatePad(ctx, req.MeetingID, req.GroupID, req.Name)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": pad,
	}, nil
}

func (ep *PadEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(GroupRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	pads, err := ep.service.Pads(req.MeetingID, req.GroupID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": pads,
	}, nil
}

func (ep *PadEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(PadRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeletePad(ctx, req.MeetingID, req.GroupID, req.PadID); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *PadEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(UpdatePadRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	pad, err := ep.service.UpdatePad(ctx, req.PadID, req.AuthorID, req.Rev, req.Changeset)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": pad,
	}, nil
}
