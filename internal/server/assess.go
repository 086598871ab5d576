package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"glassesfinder/internal/eligibility"
	"glassesfinder/pkg/types"
)

func (s *Service) handleGetAssess(w http.ResponseWriter, r *http.Request) {
	data := types.AssessPageData{
		Title:          "Check Your Eligibility",
		Error:          r.URL.Query().Get("error"),
		HouseholdSizes: eligibility.HouseholdSizeOptions(),
		ZipCodes:       eligibility.ZipCodeOptions(),
	}

	// Pre-fill from an existing session so a returning visitor can tweak
	// one field instead of retyping everything.
	if assessment, ok := s.sessionAssessment(r); ok {
		data.Form = types.AssessmentForm{
			HouseholdSize: strconv.Itoa(assessment.HouseholdSize),
			AnnualIncome:  strconv.Itoa(assessment.AnnualIncome),
			ZipCode:       assessment.ZipCode,
		}
	}

	s.renderAssessPage(w, data)
}

func (s *Service) handlePostAssess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse assessment form")
		s.redirectToAssess(w, r, "invalid form payload")
		return
	}

	var submission types.AssessmentForm
	if err := decoder.Decode(&submission, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode assessment form")
		s.internalServerError(w)
		return
	}

	// Parse failures substitute placeholder values so the assessor still
	// checks the remaining fields and the visitor sees every problem at once.
	householdSize, income, parseViolations := parseAssessmentForm(submission)

	result, err := s.assessor.Assess(householdSize, income, submission.ZipCode)

	fieldErrors := mergeViolations(parseViolations, err)
	if err != nil || len(fieldErrors) > 0 {
		var valErr *types.ValidationError
		if err != nil && !errors.As(err, &valErr) {
			s.logger.WithError(err).Error("assessment failed")
			s.internalServerError(w)
			return
		}

		s.renderAssessPage(w, types.AssessPageData{
			Title:          "Check Your Eligibility",
			Error:          "Please correct the highlighted fields.",
			Form:           submission,
			FieldErrors:    fieldErrors,
			HouseholdSizes: eligibility.HouseholdSizeOptions(),
			ZipCodes:       eligibility.ZipCodeOptions(),
		})
		return
	}

	sessionErr := s.setSessionAssessment(w, types.SessionAssessment{
		HouseholdSize: result.HouseholdSize,
		AnnualIncome:  result.AnnualIncome,
		ZipCode:       result.ZipCode,
	})
	if sessionErr != nil {
		s.logger.WithError(sessionErr).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

// parseAssessmentForm converts the raw string fields, collecting violations
// for non-numeric entries. Out-of-range parse failures report the same field
// names the assessor uses, so the two sets merge cleanly.
func parseAssessmentForm(f types.AssessmentForm) (householdSize, income int, violations []types.FieldViolation) {
	var err error

	householdSize, err = strconv.Atoi(strings.TrimSpace(f.HouseholdSize))
	if err != nil {
		violations = append(violations, types.FieldViolation{
			Field:   "household_size",
			Message: "must be a whole number",
		})
		householdSize = eligibility.MinHouseholdSize
	}

	income, err = strconv.Atoi(strings.TrimSpace(f.AnnualIncome))
	if err != nil {
		violations = append(violations, types.FieldViolation{
			Field:   "annual_income",
			Message: "must be a whole number of dollars",
		})
		income = 0
	}

	return householdSize, income, violations
}

// mergeViolations folds parse failures and the assessor's ValidationError
// into one field-to-message map. Parse messages win for a field reported by
// both, since a value that never parsed has no meaningful range check.
func mergeViolations(parsed []types.FieldViolation, err error) map[string]string {
	out := make(map[string]string)

	var valErr *types.ValidationError
	if errors.As(err, &valErr) {
		for _, v := range valErr.Fields {
			out[v.Field] = v.Message
		}
	}
	for _, v := range parsed {
		out[v.Field] = v.Message
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func (s *Service) renderAssessPage(w http.ResponseWriter, data types.AssessPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.assess", data); err != nil {
		s.logger.WithError(err).Error("failed to render assess page")
		s.internalServerError(w)
	}
}
