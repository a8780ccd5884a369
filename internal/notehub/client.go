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

// Package notehub sends device signals through the Blues Notehub API.
package notehub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultAPIURL is the Notehub request endpoint.
	DefaultAPIURL = "https://api.notefile.net"

	// SessionTokenHeader carries the Notehub session token.
	SessionTokenHeader = "X-SESSION-TOKEN"

	signalRequest = "hub.device.signal"
)

// Signaler is the interface the SMS responder depends on.  The only
// implementation in this repo is *Client; tests substitute fakes.
type Signaler interface {
	Signal(ctx context.Context) ([]byte, error)
}

// SignalRequest is the JSON body sent to Notehub.  Body is always the empty
// object; the device only cares that a signal arrived.
//
//	{
//	  "product": "com.blues.ces",
//	  "device":  "dev:860322068096251",
//	  "req":     "hub.device.signal",
//	  "body":    {}
//	}
type SignalRequest struct {
	Product string         `json:"product"`
	Device  string         `json:"device"`
	Req     string         `json:"req"`
	Body    map[string]any `json:"body"`
}

// StatusError is returned when Notehub answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("notehub returned %d: %s", e.StatusCode, e.Body)
}

// Client targets a single product/device pair with one static session token.
type Client struct {
	apiURL     string
	product    string
	device     string
	token      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAPIURL points the client at a different endpoint, e.g. a test server.
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = u }
}

// NewClient creates a Client for product and device authenticated by token.
// timeout bounds each request; a zero timeout means no client-side limit.
func NewClient(product, device, token string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		apiURL:     DefaultAPIURL,
		product:    product,
		device:     device,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request returns the payload Signal sends.
func (c *Client) Request() SignalRequest {
	return SignalRequest{
		Product: c.product,
		Device:  c.device,
		Req:     signalRequest,
		Body:    map[string]any{},
	}
}

// Signal issues exactly one hub.device.signal request and returns the raw
// response body.  Transport errors and non-2xx statuses are returned as
// errors; nothing is retried.
func (c *Client) Signal(ctx context.Context) ([]byte, error) {
	payload, err := json.Marshal(c.Request())
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionTokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
