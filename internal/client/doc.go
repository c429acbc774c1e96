// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the key vault, secure preferences, credential store, session
// policy and unlock coordinator together, gates every command behind the
// unlock flow, and runs the unlocked terminal surface with the auto-lock
// worker.
package client
