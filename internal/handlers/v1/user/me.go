package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/service"
)

type MeOutput struct {
	Body User
}

type currentUserGetter interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*service.User, error)
}

// MeHandler handles GET /v1/auth/me.
type MeHandler struct {
	AuthService currentUserGetter
}

func NewMeHandler(svc currentUserGetter) *MeHandler {
	return &MeHandler{AuthService: svc}
}

func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "current-user",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Current user",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, httperr.From(err, "")
	}
	u, err := h.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, httperr.From(err, "failed to load user")
	}
	return &MeOutput{Body: toAPIUser(u)}, nil
}
