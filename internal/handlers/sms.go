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

package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zfields/BluesScooter/internal/sms"
)

// Responder produces the reply for one inbound message.
type Responder interface {
	Handle(ctx context.Context, msg sms.InboundMessage) (sms.Reply, error)
}

// SMSHandler handles incoming SMS webhooks from Twilio.
type SMSHandler struct {
	responder Responder
	logger    *zap.Logger
}

// NewSMSHandler creates an SMSHandler.
func NewSMSHandler(responder Responder, logger *zap.Logger) *SMSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMSHandler{responder: responder, logger: logger}
}

// ServeHTTP handles POST /sms.
//
// Twilio sends the webhook as form data and expects TwiML back.  When the
// responder fails no TwiML is written; the 500 tells Twilio the webhook
// failed and the sender gets no reply.
func (h *SMSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	msg := sms.InboundMessage{
		ID:   r.FormValue("MessageSid"),
		From: r.FormValue("From"),
		To:   r.FormValue("To"),
		Body: r.FormValue("Body"),
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	h.logger.Info("sms received",
		zap.String("message_id", msg.ID),
		zap.String("from", msg.From),
		zap.String("body", msg.Body))

	reply, err := h.responder.Handle(r.Context(), msg)
	if err != nil {
		h.logger.Error("sms handling failed", zap.String("message_id", msg.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	doc, err := reply.TwiML()
	if err != nil {
		h.logger.Error("render reply", zap.String("message_id", msg.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, doc) //nolint:errcheck
}
