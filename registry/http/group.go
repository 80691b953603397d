package http

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/antobinary/bbb-pads/registry"
	"github.com/antobinary/bbb-pads/registry/endpoints"
	"github.com/antobinary/bbb-pads/registry/services"
)

func RegisterGroupEndpoints(srv Server, service *services.Registry) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := endpoints.NewGroupEndpoint(service)

	createGroupHandler := kithttp.NewServer(
		ep.Create,
		decodeCreateGroupRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listGroupsHandler := kithttp.NewServer(
		ep.List,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteGroupHandler := kithttp.NewServer(
		ep.Delete,
		decodeGroupRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups", "POST", createGroupHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups", "GET", listGroupsHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID", "DELETE", deleteGroupHandler)
}

func decodeCreateGroupRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)

	var body struct {
		ExternalID string         `json:"externalId"`
		Model      registry.Model `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}

	req := endpoints.CreateGroupRequest{
		MeetingID:  params["meetingID"],
		ExternalID: body.ExternalID,
		Model:      body.Model,
	}
	return req, nil
}

func decodeGroupRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	req := endpoints.GroupRequest{
		MeetingID: params["meetingID"],
		GroupID:   params["groupID"],
	}
	return req, nil
}
