// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the orbit-bootstrap CLI.
//
// The CLI asks a running bootstrap server for the wallet init config of a
// navigation path, the gateway URL of a canister, or version information,
// and prints the answer as JSON.
package client
