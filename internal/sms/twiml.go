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
	"fmt"

	"github.com/twilio/twilio-go/twiml"
)

// TwiML renders r as a Twilio messaging response, one <Message> per text.
func (r Reply) TwiML() (string, error) {
	verbs := make([]twiml.Element, 0, len(r.Messages))
	for _, text := range r.Messages {
		verbs = append(verbs, &twiml.MessagingMessage{Body: text})
	}

	doc, err := twiml.Messages(verbs)
	if err != nil {
		return "", fmt.Errorf("render twiml: %w", err)
	}
	return doc, nil
}
