package http

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/antobinary/bbb-pads/registry/endpoints"
	"github.com/antobinary/bbb-pads/registry/services"
)

func RegisterMeetingEndpoints(srv Server, service *services.Registry) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := endpoints.NewMeetingEndpoint(service)

	createMeetingHandler := kithttp.NewServer(
		ep.Create,
		decodeCreateMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listMeetingsHandler := kithttp.NewServer(
		ep.List,
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getMeetingHandler := kithttp.NewServer(
		ep.Get,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteMeetingHandler := kithttp.NewServer(
		ep.Delete,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	lockMeetingHandler := kithttp.NewServer(
		ep.Lock,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	unlockMeetingHandler := kithttp.NewServer(
		ep.Unlock,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/registry/v1/meetings", "POST", createMeetingHandler)
	srv.RegisterHandler("/registry/v1/meetings", "GET", listMeetingsHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID", "GET", getMeetingHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID", "DELETE", deleteMeetingHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/lock", "POST", lockMeetingHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/unlock", "POST", unlockMeetingHandler)
}

func decodeEmptyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func decodeMeetingRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["meetingID"], nil
}

func decodeCreateMeetingRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return req, nil
}
