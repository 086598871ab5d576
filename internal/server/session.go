package server

import (
	"net/http"

	"glassesfinder/pkg/types"
)

// The session cookie stores only the validated input triple. The eligibility
// result is re-derived on every read, so a stale cookie can never disagree
// with the current tier rules.

func (s *Service) setSessionAssessment(w http.ResponseWriter, assessment types.SessionAssessment) error {
	encoded, err := s.cookie.Encode(s.config.SessionCookieName, assessment)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.SessionCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.config.SessionMaxAgeSec,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Service) sessionAssessment(r *http.Request) (types.SessionAssessment, bool) {
	var assessment types.SessionAssessment

	cookie, err := r.Cookie(s.config.SessionCookieName)
	if err != nil {
		return assessment, false
	}

	if err := s.cookie.Decode(s.config.SessionCookieName, cookie.Value, &assessment); err != nil {
		s.logger.WithError(err).Debug("failed to decode session cookie")
		return assessment, false
	}

	return assessment, true
}

func (s *Service) clearSessionAssessment(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
