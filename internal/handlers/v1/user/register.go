package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type RegisterBody struct {
	Email    string `json:"email" format:"email" maxLength:"254" doc:"Login email"`
	Name     string `json:"name" minLength:"1" maxLength:"100" doc:"Display name"`
	Password string `json:"password" minLength:"8" maxLength:"72" doc:"Password"`
}

type RegisterInput struct {
	Body RegisterBody
}

type RegisterOutput struct {
	Status int
	Body   User
}

type registrar interface {
	Register(ctx context.Context, email, name, password string) (*service.User, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	AuthService registrar
}

func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register",
		Description: "Creates a user. Log in afterwards to obtain a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("registerMs")
	}
	u, err := h.AuthService.Register(ctx, input.Body.Email, input.Body.Name, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to register")
	}
	if logData != nil {
		logData.AddData("userID", u.ID.String())
	}

	return &RegisterOutput{Status: http.StatusCreated, Body: toAPIUser(u)}, nil
}
