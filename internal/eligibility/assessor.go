// Package eligibility classifies D.C. households into glasses-assistance
// tiers based on household size, annual income, and zip code.
package eligibility

import (
	"fmt"
	"hash/fnv"
	"sort"

	"glassesfinder/pkg/types"
)

const (
	MinHouseholdSize = 1
	MaxHouseholdSize = 15

	// Households larger than this use the size-8 Medicaid limit.
	limitTableCap = 8
)

// D.C. Medicaid annual income limits by household size, in whole dollars.
var medicaidIncomeLimits = map[int]int{
	1: 20783,
	2: 28207,
	3: 35632,
	4: 43056,
	5: 50481,
	6: 57905,
	7: 65330,
	8: 72754,
}

// Budget windows per tier, in cents.
var tierBudgets = map[types.TierKey]types.BudgetRange{
	types.TierMedicaidEligible: {MinCents: 0, MaxCents: 50_00},
	types.TierLowIncomeGap:     {MinCents: 0, MaxCents: 100_00},
	types.TierModerateIncome:   {MinCents: 50_00, MaxCents: 200_00},
	types.TierAnyIncome:        {MinCents: 0, MaxCents: 500_00},
}

var tierNames = map[types.TierKey]string{
	types.TierMedicaidEligible: "Medicaid Eligible",
	types.TierLowIncomeGap:     "Low-Income Gap",
	types.TierModerateIncome:   "Moderate Income",
	types.TierAnyIncome:        "Any Income",
}

var priorityMessages = map[types.TierKey]string{
	types.TierMedicaidEligible: "You may qualify for free glasses through D.C. Medicaid! Contact the providers listed below first.",
	types.TierLowIncomeGap:     "You're in the coverage gap - check discount programs and consider the most affordable options below.",
	types.TierModerateIncome:   "You have moderate income flexibility - focus on value and quality.",
	types.TierAnyIncome:        "You have budget flexibility - explore all options for the best fit!",
}

// D.C. zip codes accepted by the assessment form: main residential areas
// plus federal zips commonly used by residents.
var dcZipCodes = map[string]struct{}{
	"20001": {}, "20002": {}, "20003": {}, "20004": {}, "20005": {},
	"20006": {}, "20007": {}, "20008": {}, "20009": {}, "20010": {},
	"20011": {}, "20012": {}, "20015": {}, "20016": {}, "20017": {},
	"20018": {}, "20019": {}, "20020": {}, "20024": {}, "20026": {},
	"20027": {}, "20029": {}, "20030": {}, "20032": {}, "20036": {},
	"20037": {}, "20052": {}, "20053": {}, "20056": {}, "20057": {},
	"20064": {}, "20066": {}, "20071": {}, "20090": {}, "20091": {},
	"20201": {}, "20204": {}, "20228": {}, "20240": {}, "20260": {},
}

// IsDCZipCode reports whether zip is on the accepted D.C. list.
func IsDCZipCode(zip string) bool {
	_, ok := dcZipCodes[zip]
	return ok
}

// TierBudget returns the budget window for a tier. The second return is
// false for an unknown tier key.
func TierBudget(tier types.TierKey) (types.BudgetRange, bool) {
	b, ok := tierBudgets[tier]
	return b, ok
}

// TierBudgets returns a copy of the full tier-to-budget table.
func TierBudgets() map[types.TierKey]types.BudgetRange {
	out := make(map[types.TierKey]types.BudgetRange, len(tierBudgets))
	for k, v := range tierBudgets {
		out[k] = v
	}
	return out
}

// MedicaidLimit returns the annual income limit in dollars for a household
// of the given size, capping at the size-8 limit.
func MedicaidLimit(householdSize int) int {
	if householdSize > limitTableCap {
		householdSize = limitTableCap
	}
	return medicaidIncomeLimits[householdSize]
}

// resultID derives a stable identifier from the input tuple, so repeated
// assessments of the same household agree completely, ID included.
func resultID(householdSize, annualIncome int, zipCode string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%s", householdSize, annualIncome, zipCode)
	return fmt.Sprintf("assessment-%016x", h.Sum64())
}

// Assessor classifies households into assistance tiers. Zero value is ready
// to use; assessments are pure functions of their inputs.
type Assessor struct{}

func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess validates the inputs and returns the household's tier, budget
// window, and matching assistance resources. All field violations are
// collected before returning, so a submission with a bad household size AND
// a bad zip reports both.
func (a *Assessor) Assess(householdSize, annualIncome int, zipCode string) (*types.EligibilityResult, error) {
	var violations []types.FieldViolation

	if householdSize < MinHouseholdSize || householdSize > MaxHouseholdSize {
		violations = append(violations, types.FieldViolation{
			Field:   "household_size",
			Message: fmt.Sprintf("must be between %d and %d people", MinHouseholdSize, MaxHouseholdSize),
		})
	}
	if annualIncome < 0 {
		violations = append(violations, types.FieldViolation{
			Field:   "annual_income",
			Message: "must be zero or a positive number",
		})
	}
	if !IsDCZipCode(zipCode) {
		violations = append(violations, types.FieldViolation{
			Field:   "zip_code",
			Message: fmt.Sprintf("%q is not a valid D.C. zip code (e.g. 20001, 20009, 20036)", zipCode),
		})
	}

	if len(violations) > 0 {
		return nil, types.NewValidationError(violations...)
	}

	medicaidLimit := MedicaidLimit(householdSize)

	var tier types.TierKey
	switch {
	case annualIncome <= medicaidLimit:
		tier = types.TierMedicaidEligible
	case annualIncome <= medicaidLimit*2:
		tier = types.TierLowIncomeGap
	case annualIncome <= medicaidLimit*3:
		tier = types.TierModerateIncome
	default:
		tier = types.TierAnyIncome
	}

	return &types.EligibilityResult{
		ID:              resultID(householdSize, annualIncome, zipCode),
		TierKey:         tier,
		TierName:        tierNames[tier],
		BudgetRange:     tierBudgets[tier],
		HouseholdSize:   householdSize,
		AnnualIncome:    annualIncome,
		ZipCode:         zipCode,
		MedicaidLimit:   medicaidLimit,
		Resources:       resourcesForTier(tier),
		PriorityMessage: priorityMessages[tier],
	}, nil
}

// HouseholdSizeOptions lists the selectable sizes for the assessment form.
// The form offers up to the limit-table cap; Assess itself accepts sizes up
// to MaxHouseholdSize for callers entering them directly.
func HouseholdSizeOptions() []int {
	sizes := make([]int, 0, limitTableCap)
	for i := MinHouseholdSize; i <= limitTableCap; i++ {
		sizes = append(sizes, i)
	}
	return sizes
}

// ZipCodeOptions lists the accepted D.C. zip codes in ascending order.
func ZipCodeOptions() []string {
	zips := make([]string, 0, len(dcZipCodes))
	for z := range dcZipCodes {
		zips = append(zips, z)
	}
	sort.Strings(zips)
	return zips
}
