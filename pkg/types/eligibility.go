package types

import "fmt"

type TierKey string

const (
	TierMedicaidEligible TierKey = "medicaid_eligible"
	TierLowIncomeGap     TierKey = "low_income_gap"
	TierModerateIncome   TierKey = "moderate_income"
	TierAnyIncome        TierKey = "any_income"
)

// BudgetRange is an inclusive price window in cents.
type BudgetRange struct {
	MinCents int
	MaxCents int
}

func (b BudgetRange) Valid() bool {
	return b.MinCents >= 0 && b.MaxCents >= b.MinCents
}

func (b BudgetRange) Contains(priceCents int) bool {
	return priceCents >= b.MinCents && priceCents <= b.MaxCents
}

// Display renders the range as whole dollars, e.g. "$0-$50".
func (b BudgetRange) Display() string {
	return fmt.Sprintf("$%d-$%d", b.MinCents/100, b.MaxCents/100)
}

// AssistanceResource is static reference data for a D.C. assistance program
// or eyewear retailer.
type AssistanceResource struct {
	Name        string
	Description string
	Phone       *string
	Address     *string
	Website     *string
	Eligibility *string
}

// EligibilityResult is built fresh per assessment and never persisted.
type EligibilityResult struct {
	ID              string
	TierKey         TierKey
	TierName        string
	BudgetRange     BudgetRange
	HouseholdSize   int
	AnnualIncome    int
	ZipCode         string
	MedicaidLimit   int
	Resources       []AssistanceResource
	PriorityMessage string
}
