// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command given by args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

var _ Client = (*App)(nil)
