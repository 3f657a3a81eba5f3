// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	ErrListenGRPC = errors.New("error listening for gRPC")
	ErrServeHTTP  = errors.New("HTTP server stopped")
	ErrServeGRPC  = errors.New("gRPC server stopped")
)
