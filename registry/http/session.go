package http

import (
	"context"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/antobinary/bbb-pads/registry/endpoints"
	"github.com/antobinary/bbb-pads/registry/services"
)

func RegisterSessionEndpoints(srv Server, service *services.Registry) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := endpoints.NewSessionEndpoint(service)

	createSessionHandler := kithttp.NewServer(
		ep.Create,
		decodeSessionRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listSessionsHandler := kithttp.NewServer(
		ep.List,
		decodeGroupRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteSessionHandler := kithttp.NewServer(
		ep.Delete,
		decodeSessionRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/users/:userID/sessions", "POST", createSessionHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/users/:userID/sessions", "DELETE", deleteSessionHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/sessions", "GET", listSessionsHandler)
}

func decodeSessionRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	req := endpoints.SessionRequest{
		MeetingID: params["meetingID"],
		GroupID:   params["groupID"],
		UserID:    params["userID"],
	}
	return req, nil
}
