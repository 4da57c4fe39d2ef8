package sqlconfig

// AccountType is stored as a smallint.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

var accountTypeNames = map[AccountType]string{
	AccountTypeCash:        "Cash",
	AccountTypeCreditCards: "Credit Cards",
	AccountTypeInvestments: "Investments",
	AccountTypeLoans:       "Loans",
	AccountTypeAssets:      "Assets",
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}
