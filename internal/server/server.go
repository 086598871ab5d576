package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"glassesfinder/internal/catalog"
	"glassesfinder/internal/eligibility"
	"glassesfinder/internal/images"
	"glassesfinder/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	store     *catalog.Store
	assessor  *eligibility.CachedAssessor
	fetcher   *images.Fetcher
	templates *template.Template

	cookie *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	store *catalog.Store,
	assessor *eligibility.CachedAssessor,
) (*Service, error) {
	mux := flow.New()

	cookie, err := buildCookieCodec(config)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:   logger,
		config:   config,
		store:    store,
		assessor: assessor,
		cookie:   cookie,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	if config.ImageFetchEnabled {
		s.fetcher = images.NewFetcher(time.Duration(config.ImageFetchTimeoutSec)*time.Second, logger)
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

// AuditImages fetches every catalog image once and logs the ones that fail
// to load, so broken placeholders surface in the logs instead of on the
// results page. No-op unless image fetching is enabled.
func (s *Service) AuditImages(ctx context.Context) {
	if s.fetcher == nil {
		return
	}

	for _, item := range s.store.Items() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.fetcher.Fetch(ctx, item); err != nil {
			s.logger.WithError(err).WithField("item_id", item.ID).
				Warn("catalog image unreachable, page will use the fallback pixel")
		}
	}
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleWelcome, http.MethodGet)

	r.HandleFunc("/assess", s.handleGetAssess, http.MethodGet)
	r.HandleFunc("/assess", s.handlePostAssess, http.MethodPost)

	r.HandleFunc("/results", s.handleResults, http.MethodGet)
	r.HandleFunc("/results/export", s.handleResultsExport, http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

// buildCookieCodec builds the securecookie codec from configured keys, or
// from random keys when unset. Random keys invalidate existing sessions on
// restart, which only costs the visitor a re-submit of the form.
func buildCookieCodec(config *types.Config) (*securecookie.SecureCookie, error) {
	var hashKey, blockKey []byte
	var err error

	if config.CookieHashKey != "" {
		hashKey, err = base64.StdEncoding.DecodeString(config.CookieHashKey)
		if err != nil {
			return nil, fmt.Errorf("decoding cookie hash key: %w", err)
		}
	} else {
		hashKey = securecookie.GenerateRandomKey(32)
	}

	if config.CookieBlockKey != "" {
		blockKey, err = base64.StdEncoding.DecodeString(config.CookieBlockKey)
		if err != nil {
			return nil, fmt.Errorf("decoding cookie block key: %w", err)
		}
	} else {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return securecookie.New(hashKey, blockKey), nil
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"dollars": func(cents int) string {
			return fmt.Sprintf("$%d", cents/100)
		},
		"fallbackPixel": func() string {
			return images.FallbackDataURL
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
