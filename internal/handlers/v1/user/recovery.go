package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
)

type RecoveryRequestInput struct {
	Body struct {
		Email string `json:"email" minLength:"1" doc:"Login email"`
	}
}

type RecoveryTokenInput struct {
	Body struct {
		Token string `json:"token" minLength:"1" doc:"Recovery token"`
	}
}

type ResetPasswordInput struct {
	Body struct {
		Token    string `json:"token" minLength:"1" doc:"Recovery token"`
		Password string `json:"password" minLength:"8" maxLength:"72" doc:"New password"`
	}
}

type recoverer interface {
	RequestRecovery(ctx context.Context, email string) error
	VerifyRecoveryToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// RecoveryHandler serves the password recovery flow under /v1/auth/recovery.
type RecoveryHandler struct {
	AuthService recoverer
}

func NewRecoveryHandler(svc recoverer) *RecoveryHandler {
	return &RecoveryHandler{AuthService: svc}
}

func (h *RecoveryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "request-recovery",
		Method:        http.MethodPost,
		Path:          "/v1/auth/recovery",
		Summary:       "Request password recovery",
		Description:   "Sends a recovery token to the email if it belongs to a user. The response does not reveal whether it does.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusAccepted,
	}, h.request)

	huma.Register(api, huma.Operation{
		OperationID:   "verify-recovery-token",
		Method:        http.MethodPost,
		Path:          "/v1/auth/recovery/verify",
		Summary:       "Verify recovery token",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.verify)

	huma.Register(api, huma.Operation{
		OperationID:   "reset-password",
		Method:        http.MethodPost,
		Path:          "/v1/auth/recovery/reset",
		Summary:       "Reset password",
		Description:   "Sets a new password with a recovery token and ends every session of the user.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.reset)
}

func (h *RecoveryHandler) request(ctx context.Context, input *RecoveryRequestInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("requestRecoveryMs")
	}
	err := h.AuthService.RequestRecovery(ctx, input.Body.Email)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.From(err, "failed to request recovery")
	}
	return nil, nil
}

func (h *RecoveryHandler) verify(ctx context.Context, input *RecoveryTokenInput) (*struct{}, error) {
	if err := h.AuthService.VerifyRecoveryToken(ctx, input.Body.Token); err != nil {
		return nil, httperr.From(err, "failed to verify recovery token")
	}
	return nil, nil
}

func (h *RecoveryHandler) reset(ctx context.Context, input *ResetPasswordInput) (*struct{}, error) {
	if err := h.AuthService.ResetPassword(ctx, input.Body.Token, input.Body.Password); err != nil {
		return nil, httperr.From(err, "failed to reset password")
	}
	return nil, nil
}
