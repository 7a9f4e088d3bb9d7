// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notevault client application runtime.
//
// It wires configuration, logging, the vault file store and the vault
// service into the command tree and runs one command per process.
package client
