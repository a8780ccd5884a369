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

package sms

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zfields/BluesScooter/internal/notehub"
)

// Responder turns one inbound message into one reply.  It holds no mutable
// state and is safe for concurrent use.
type Responder struct {
	signaler notehub.Signaler
	logger   *zap.Logger
}

// NewResponder creates a Responder that forwards scooter messages to signaler.
// A nil logger disables logging.
func NewResponder(signaler notehub.Signaler, logger *zap.Logger) *Responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{signaler: signaler, logger: logger}
}

// Handle classifies msg and returns the reply for the sender.
//
// Only a scooter message has a side effect: exactly one Notehub signal.  If
// that signal fails Handle returns the error and an empty Reply; the caller
// must not send anything back.
func (r *Responder) Handle(ctx context.Context, msg InboundMessage) (Reply, error) {
	kind := Classify(msg.Body)
	log := r.logger.With(
		zap.String("message_id", msg.ID),
		zap.String("from", msg.From),
		zap.Stringer("kind", kind),
	)

	switch kind {
	case KindSignal:
		resp, err := r.signaler.Signal(ctx)
		if err != nil {
			log.Error("notehub signal failed", zap.Error(err))
			return Reply{}, fmt.Errorf("send signal: %w", err)
		}
		log.Info("notehub signal sent", zap.ByteString("response", resp))
		return NewReply(PromoReply), nil
	case KindTest:
		log.Debug("test ping")
		return NewReply(GreetReply), nil
	default:
		log.Debug("unrecognized message")
		return NewReply(UnknownReply), nil
	}
}
