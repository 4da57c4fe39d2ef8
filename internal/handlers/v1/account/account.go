package account

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Account name"`
	Type            int    `json:"type" doc:"Account type: 0=Cash, 1=Credit Cards, 2=Investments, 3=Loans, 4=Assets"`
	TypeName        string `json:"typeName" doc:"Display name of the account type"`
	SubType         string `json:"subType" doc:"Account sub-type"`
	Balance         string `json:"balance" doc:"Decimal balance"`
	StartingBalance string `json:"startingBalance" doc:"Decimal balance the account was opened with"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPIAccount(acc service.Account) Account {
	return Account{
		ID:              acc.ID.String(),
		Name:            acc.Name,
		Type:            int(acc.Type),
		TypeName:        acc.Type.String(),
		SubType:         acc.SubType,
		Balance:         acc.Balance.StringFixed(2),
		StartingBalance: acc.StartingBalance.StringFixed(2),
		CreatedAt:       acc.CreatedAt.Format(time.RFC3339),
	}
}

// AccountPathInput addresses a single account.
type AccountPathInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}
