package types

// AssessmentForm carries the raw eligibility form submission. Numeric fields
// stay strings so a non-numeric entry reports as a field violation alongside
// any others instead of aborting the decode.
type AssessmentForm struct {
	HouseholdSize string `form:"household_size"`
	AnnualIncome  string `form:"annual_income"`
	ZipCode       string `form:"zip_code"`
}

// ResultFilters are the secondary filters applied on the results page,
// independent of the tier budget window.
type ResultFilters struct {
	FrameStyle   string `form:"style"`
	PriceBracket string `form:"price"`
}

// SessionAssessment is the validated input triple stored in the session
// cookie. The result itself is re-derived on read; assessments are pure.
type SessionAssessment struct {
	HouseholdSize int    `json:"household_size"`
	AnnualIncome  int    `json:"annual_income"`
	ZipCode       string `json:"zip_code"`
}
