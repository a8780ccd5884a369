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

// signal sends one hub.device.signal to the configured device and prints the
// Notehub response.  It reads the same environment as the server, so it is a
// quick way to check a session token without sending an SMS.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zfields/BluesScooter/config"
	"github.com/zfields/BluesScooter/internal/logging"
	"github.com/zfields/BluesScooter/internal/notehub"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("signal: invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("signal: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	client := notehub.NewClient(
		cfg.Notehub.ProductUID,
		cfg.Notehub.DeviceUID,
		cfg.Notehub.SessionToken,
		cfg.Notehub.Timeout,
		notehub.WithAPIURL(cfg.Notehub.APIURL),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("sending signal", zap.String("device", cfg.Notehub.DeviceUID))
	body, err := client.Signal(ctx)
	if err != nil {
		logger.Error("signal failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}

	fmt.Println(string(body))
}
