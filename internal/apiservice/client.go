// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

import (
	"net/http"
	"time"
)

// newHTTPClient returns the client used when the caller does not inject one.
// The timeout bounds the whole request, including reading the body.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
