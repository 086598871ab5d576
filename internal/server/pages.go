package server

import (
	"net/http"
	"net/url"

	"glassesfinder/pkg/types"
)

func (s *Service) handleWelcome(w http.ResponseWriter, r *http.Request) {
	data := types.WelcomePageData{
		Title:  "D.C. Glasses Finder",
		Notice: r.URL.Query().Get("notice"),
		Error:  r.URL.Query().Get("error"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.welcome", data); err != nil {
		s.logger.WithError(err).Error("failed to render welcome page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// redirectToAssess sends the visitor back to the form with a flash error,
// used when the results pages have no usable session to work from.
func (s *Service) redirectToAssess(w http.ResponseWriter, r *http.Request, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, "/assess?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
