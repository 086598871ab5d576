package server

import (
	"net/http"

	"glassesfinder/internal/recommend"
	"glassesfinder/pkg/types"
)

func (s *Service) handleResults(w http.ResponseWriter, r *http.Request) {
	assessment, ok := s.sessionAssessment(r)
	if !ok {
		s.redirectToAssess(w, r, "Start with an eligibility check to see your matches.")
		return
	}

	result, recommendation, err := s.resolveResults(assessment)
	if err != nil {
		// Inputs that validated when the cookie was written can fail later
		// if the tier rules changed underneath them.
		s.logger.WithError(err).Warn("session assessment no longer valid")
		s.clearSessionAssessment(w)
		s.redirectToAssess(w, r, "Your saved assessment has expired. Please check again.")
		return
	}

	var filters types.ResultFilters
	if err := decoder.Decode(&filters, r.URL.Query()); err != nil {
		s.logger.WithError(err).Error("failed to decode result filters")
		s.internalServerError(w)
		return
	}

	shown := recommend.Apply(
		recommendation.Items,
		recommend.ByFrameStyle(filters.FrameStyle),
		recommend.ByPriceBracket(filters.PriceBracket),
	)

	data := types.ResultsPageData{
		Title:          "Your Glasses Matches",
		Eligibility:    result,
		Recommendation: recommendation,
		Shown:          shown,
		Filters:        filters,
		FrameStyles:    types.FrameStyles,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.results", data); err != nil {
		s.logger.WithError(err).Error("failed to render results page")
		s.internalServerError(w)
		return
	}
}

// resolveResults re-derives the eligibility result and budget-filtered
// catalog from the stored inputs.
func (s *Service) resolveResults(assessment types.SessionAssessment) (*types.EligibilityResult, *types.RecommendationResult, error) {
	result, err := s.assessor.Assess(assessment.HouseholdSize, assessment.AnnualIncome, assessment.ZipCode)
	if err != nil {
		return nil, nil, err
	}

	recommendation, err := recommend.Recommend(s.store.Items(), result.BudgetRange)
	if err != nil {
		return nil, nil, err
	}

	return result, recommendation, nil
}
