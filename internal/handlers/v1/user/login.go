package user

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type LoginBody struct {
	Email    string `json:"email" minLength:"1" doc:"Login email"`
	Password string `json:"password" minLength:"1" doc:"Password"`
}

type LoginInput struct {
	Body LoginBody
}

type LoginResponse struct {
	Token     string `json:"token" doc:"Bearer token for the Authorization header"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 session expiry"`
	User      User   `json:"user"`
}

type LoginOutput struct {
	Body LoginResponse
}

type loginer interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	AuthService loginer
}

func NewLoginHandler(svc loginer) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Checks the credentials and opens a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("loginMs")
	}
	session, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to log in")
	}
	if logData != nil {
		logData.AddData("userID", session.User.ID.String())
	}

	return &LoginOutput{Body: LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
		User:      toAPIUser(session.User),
	}}, nil
}
