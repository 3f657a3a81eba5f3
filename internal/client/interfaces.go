// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable CLI command.
type Client interface {
	// Run executes the command and returns once its output is written.
	Run() error
}

var _ Client = (*App)(nil)
