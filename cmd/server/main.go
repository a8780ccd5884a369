// blues-scooter - SMS signal relay for the Blues scooter demo
// Copyright (C) 2026  blues-scooter contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// server receives Twilio SMS webhooks and relays scooter messages to the
// demo device as Notehub signals.
//
// Configuration comes from environment variables (or a .env file):
//
//	PORT                   listen port (default 8080)
//	ENV                    "production" for JSON logs (default development)
//	LOG_LEVEL              zap level (default info)
//	NOTEHUB_API_URL        signal endpoint (default https://api.notefile.net)
//	NOTEHUB_PRODUCT_UID    product UID (default com.blues.ces)
//	NOTEHUB_DEVICE_UID     device UID (default dev:860322068096251)
//	NOTEHUB_SESSION_TOKEN  session token (required)
//	NOTEHUB_TIMEOUT        per-request timeout (default 15s)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zfields/BluesScooter/config"
	"github.com/zfields/BluesScooter/internal/gohttp"
	"github.com/zfields/BluesScooter/internal/handlers"
	"github.com/zfields/BluesScooter/internal/logging"
	"github.com/zfields/BluesScooter/internal/notehub"
	"github.com/zfields/BluesScooter/internal/sms"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("blues-scooter %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("blues-scooter: invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("blues-scooter: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	client := notehub.NewClient(
		cfg.Notehub.ProductUID,
		cfg.Notehub.DeviceUID,
		cfg.Notehub.SessionToken,
		cfg.Notehub.Timeout,
		notehub.WithAPIURL(cfg.Notehub.APIURL),
	)
	responder := sms.NewResponder(client, logger)

	s := gohttp.New(logger)
	// SMS webhook endpoint (Twilio will POST here)
	s.Router.Method(http.MethodPost, "/sms", handlers.NewSMSHandler(responder, logger))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("blues-scooter configured",
		zap.String("version", version),
		zap.String("product", cfg.Notehub.ProductUID),
		zap.String("device", cfg.Notehub.DeviceUID),
		zap.String("notehub_url", cfg.Notehub.APIURL))

	if err := s.ListenAndServe(ctx, ":"+cfg.Server.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
