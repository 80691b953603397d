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

func RegisterUserEndpoints(srv Server, service *services.Registry) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := endpoints.NewUserEndpoint(service)

	createUserHandler := kithttp.NewServer(
		ep.Create,
		decodeCreateUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listUsersHandler := kithttp.NewServer(
		ep.List,
		decodeMeetingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteUserHandler := kithttp.NewServer(
		ep.Delete,
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	lockUserHandler := kithttp.NewServer(
		ep.Lock,
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	unlockUserHandler := kithttp.NewServer(
		ep.Unlock,
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	promoteUserHandler := kithttp.NewServer(
		ep.Promote,
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	demoteUserHandler := kithttp.NewServer(
		ep.Demote,
		decodeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users", "POST", createUserHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users", "GET", listUsersHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users/:userID", "DELETE", deleteUserHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users/:userID/lock", "POST", lockUserHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users/:userID/unlock", "POST", unlockUserHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users/:userID/promote", "POST", promoteUserHandler)
	srv.RegisterHandler("/registry/v1/meetings/:meetingID/users/:userID/demote", "POST", demoteUserHandler)
}

func decodeCreateUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)

	var user registry.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return nil, err
	}

	req := endpoints.CreateUserRequest{
		MeetingID: params["meetingID"],
		User:      user,
	}
	return req, nil
}

func decodeUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	req := endpoints.UserRequest{
		MeetingID: params["meetingID"],
		UserID:    params["userID"],
	}
	return req, nil
}
