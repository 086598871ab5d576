package types

type WelcomePageData struct {
	Title  string
	Notice string
	Error  string
}

type AssessPageData struct {
	Title string
	Error string

	// Re-populated form values and per-field messages after a failed submit.
	Form        AssessmentForm
	FieldErrors map[string]string

	HouseholdSizes []int
	ZipCodes       []string
}

type ResultsPageData struct {
	Title string

	Eligibility    *EligibilityResult
	Recommendation *RecommendationResult

	// Items after secondary filters; what the grid actually renders.
	Shown []CatalogItem

	Filters     ResultFilters
	FrameStyles []FrameStyle
}
