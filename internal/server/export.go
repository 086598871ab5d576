package server

import (
	"fmt"
	"net/http"
	"time"

	"glassesfinder/internal/export"
)

func (s *Service) handleResultsExport(w http.ResponseWriter, r *http.Request) {
	assessment, ok := s.sessionAssessment(r)
	if !ok {
		s.redirectToAssess(w, r, "Start with an eligibility check before exporting.")
		return
	}

	result, recommendation, err := s.resolveResults(assessment)
	if err != nil {
		s.logger.WithError(err).Warn("session assessment no longer valid")
		s.clearSessionAssessment(w)
		s.redirectToAssess(w, r, "Your saved assessment has expired. Please check again.")
		return
	}

	filename := fmt.Sprintf("glasses-%s-%s.csv", result.TierKey, time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.Write(w, result.TierName, recommendation.Items); err != nil {
		// Headers are already out; all we can do is log.
		s.logger.WithError(err).Error("failed to write csv export")
	}
}
