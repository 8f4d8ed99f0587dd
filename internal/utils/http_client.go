// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps [resty.Client] so the adapter layer can extend it
// without leaking resty construction details.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/api/version")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewConfiguredHTTPClient returns a client bound to baseURL with a request
// timeout applied to every call.
func NewConfiguredHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}
