// Package notify delivers account recovery tokens to users.
package notify

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// RecoveryMessage is published when a user asks to reset their password.
type RecoveryMessage struct {
	UserID    uuid.UUID `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RecoveryNotifier hands a recovery token to whatever delivers it.
type RecoveryNotifier interface {
	NotifyRecovery(ctx context.Context, msg RecoveryMessage) error
}

// LogNotifier writes the recovery request to the log. It is used when no
// broker is configured. The token itself is never logged.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyRecovery(ctx context.Context, msg RecoveryMessage) error {
	n.logger.WithFields(logrus.Fields{
		"userID":    msg.UserID.String(),
		"expiresAt": msg.ExpiresAt.Format(time.RFC3339),
	}).Info("Notify.recovery.no broker configured")
	return nil
}
