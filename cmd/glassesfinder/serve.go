package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glassesfinder/internal/catalog"
	"glassesfinder/internal/eligibility"
	"glassesfinder/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	store := catalog.NewDefaultStore()
	assessor := eligibility.NewCachedAssessor(eligibility.NewAssessor())

	summary := store.Summarize(eligibility.TierBudgets())
	logger.WithFields(logrus.Fields{
		"items":     summary.Total,
		"min_price": summary.MinPriceCents / 100,
		"max_price": summary.MaxPriceCents / 100,
	}).Info("catalog loaded")

	srv, err := server.New(config, logger, store, assessor)
	if err != nil {
		return err
	}

	if config.ImageFetchEnabled {
		go srv.AuditImages(ctx)
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
