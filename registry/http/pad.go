package http

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/antobinary/bbb-pads/registry/endpoints"
	"github.com/antobinary/bbb-pads/registry/services"
)

func RegisterPadEndpoints(srv Server, service *services.Registry) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := endpoints.NewPadEndpoint(service)

	createPadHandler := kithttp.NewServer(
		ep.Create,
		decodeCreatePadRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listPadsHandler := kithttp.NewServer(
		ep.List,
		decodeGroupRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deletePadHandler := kithttp.NewServer(
		ep.Delete,
		decodePadRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Edits come in from the document service's hook, not from the
	// meeting host, hence the flat route.
	updatePadHandler := kithttp.NewServer(
		ep.Update,
		decodeUpdatePadRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/pads", "POST", createPadHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/pads", "GET", listPadsHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/groups/:groupID/pads/:padID", "DELETE", deletePadHandler)
	srv.RegisterHandler("/registry/v1/pads/update", "POST", updatePadHandler)
}

func decodeCreatePadRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}

	req := endpoints.CreatePadRequest{
		MeetingID: params["meetingID"],
		GroupID:   params["groupID"],
		Name:      body.Name,
	}
	return req, nil
}

func decodePadRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	req := endpoints.PadRequest{
		MeetingID: params["meetingID"],
		GroupID:   params["groupID"],
		PadID:     params["padID"],
	}
	return req, nil
}

func decodeUpdatePadRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.UpdatePadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return req, nil
}
