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

import "strings"

// ScooterEmoji is U+1F6F5 MOTOR SCOOTER.
const ScooterEmoji = "\U0001F6F5"

// Kind is the outcome of classifying a message body.
type Kind int

const (
	KindUnknown Kind = iota
	KindSignal
	KindTest
)

func (k Kind) String() string {
	switch k {
	case KindSignal:
		return "signal"
	case KindTest:
		return "test"
	default:
		return "unknown"
	}
}

// Classify lowercases body and returns the first matching kind: the scooter
// emoji wins over "test", and anything else is KindUnknown.
func Classify(body string) Kind {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, ScooterEmoji):
		return KindSignal
	case strings.Contains(lower, "test"):
		return KindTest
	default:
		return KindUnknown
	}
}
