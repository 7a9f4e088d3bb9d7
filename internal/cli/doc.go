// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the notevault command tree.
//
// Every vault command unlocks the vault with the master password, runs, saves
// when notes changed and closes the session, dropping the key from memory.
// Configuration and the logger are resolved once in the root command's
// pre-run hook; commands obtain the logger via [logger.FromContext].
package cli
