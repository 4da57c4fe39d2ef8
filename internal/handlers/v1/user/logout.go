package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/httperr"
)

type LogoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token of the session to end"`
}

type sessionEnder interface {
	Logout(ctx context.Context, token string) error
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	AuthService sessionEnder
}

func NewLogoutHandler(svc sessionEnder) *LogoutHandler {
	return &LogoutHandler{AuthService: svc}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/v1/auth/logout",
		Summary:       "Log out",
		Description:   "Ends the session of the bearer token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*struct{}, error) {
	token, ok := auth.BearerToken(input.Authorization)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "bearer token required")
	}
	if err := h.AuthService.Logout(ctx, token); err != nil {
		return nil, httperr.From(err, "failed to log out")
	}
	return nil, nil
}
