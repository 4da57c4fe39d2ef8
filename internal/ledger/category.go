package ledger

import (
	"strings"
)

// SystemCategory is one of the built-in categories every user has.
type SystemCategory string

const (
	CategoryFood          SystemCategory = "FOOD"
	CategoryTransport     SystemCategory = "TRANSPORT"
	CategoryEntertainment SystemCategory = "ENTERTAINMENT"
	CategoryUtilities     SystemCategory = "UTILITIES"
	CategoryHealth        SystemCategory = "HEALTH"
	CategoryEducation     SystemCategory = "EDUCATION"
	CategoryDebts         SystemCategory = "DEBTS"
	CategorySalary        SystemCategory = "SALARY"
	CategoryFreelance     SystemCategory = "FREELANCE"
	CategoryInvestments   SystemCategory = "INVESTMENTS"
	CategoryOther         SystemCategory = "OTHER"
)

// SystemCategories lists the built-in categories in display order.
var SystemCategories = []SystemCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealth,
	CategoryEducation,
	CategoryDebts,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestments,
	CategoryOther,
}

// DefaultType is the transaction type a system category is usually used with.
func (c SystemCategory) DefaultType() TransactionType {
	switch c {
	case CategorySalary, CategoryFreelance, CategoryInvestments:
		return TransactionTypeIncome
	default:
		return TransactionTypeExpense
	}
}

// LookupSystemCategory matches name case-insensitively against the built-in set.
func LookupSystemCategory(name string) (SystemCategory, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range SystemCategories {
		if string(c) == upper {
			return c, true
		}
	}
	return "", false
}

// Category is either a SystemCategory or a user-defined name. The zero value is
// not a valid category.
type Category struct {
	system SystemCategory
	custom string
}

// System wraps a built-in category.
func System(c SystemCategory) Category {
	return Category{system: c}
}

// Custom wraps a user-defined category name.
func Custom(name string) Category {
	return Category{custom: strings.TrimSpace(name)}
}

// ParseCategory maps a stored or submitted value onto a Category. Known system
// keys win over custom names.
func ParseCategory(value string) Category {
	if c, ok := LookupSystemCategory(value); ok {
		return System(c)
	}
	return Custom(value)
}

func (c Category) IsSystem() bool {
	return c.system != ""
}

// SystemCategory returns the built-in category, if this is one.
func (c Category) SystemCategory() (SystemCategory, bool) {
	return c.system, c.system != ""
}

func (c Category) IsZero() bool {
	return c.system == "" && c.custom == ""
}

// Name is the value stored in the transactions table and used for ordering.
func (c Category) Name() string {
	if c.system != "" {
		return string(c.system)
	}
	return c.custom
}

func (c Category) String() string {
	return c.Name()
}
