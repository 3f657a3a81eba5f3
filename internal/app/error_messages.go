// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// orbit-bootstrap server handlers and the CLI client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client maps them back to service errors, so the wording is part of the
// API.
package app

const (
	// MsgInvalidCanisterID is returned when a canister id contains anything
	// but lowercase letters, digits and dashes.
	MsgInvalidCanisterID = "invalid canister id"

	// MsgCanisterNotConfigured is returned when a canister is looked up by a
	// name that has no id configured.
	MsgCanisterNotConfigured = "canister is not configured"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is returned with 503 when a request runs past the
	// configured request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgNotFound is returned for unknown routes and for methods a route does
	// not serve.
	MsgNotFound = "not found"
)
