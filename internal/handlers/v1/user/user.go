package user

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// User is the public view of a registered user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Login email"`
	Name      string `json:"name" doc:"Display name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 registration time"`
}

func toAPIUser(u *service.User) User {
	return User{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
