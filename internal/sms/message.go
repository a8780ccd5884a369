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

// Package sms classifies inbound text messages and builds the replies sent
// back to the sender.
package sms

// Canned reply texts.
const (
	PromoReply   = "Check out what Blues can do for you at https://blues.com"
	GreetReply   = "Hello there!"
	UnknownReply = "Not sure what you meant!?"
)

// InboundMessage is one SMS delivered by the telephony webhook.
//
// Only Body drives behaviour.  ID, From and To are carried for log
// correlation.
type InboundMessage struct {
	// ID is the provider's message SID, or a generated UUID when the
	// provider did not send one.
	ID string

	// From is the sender's E.164 number (e.g. "+15551234567").
	From string

	// To is the number the message was sent to.
	To string

	// Body is the UTF-8 message text.
	Body string
}

// Reply is the ordered list of texts returned to the sender.  Each entry is
// delivered as its own SMS.
type Reply struct {
	Messages []string
}

// NewReply returns a Reply containing texts in order.
func NewReply(texts ...string) Reply {
	return Reply{Messages: texts}
}
