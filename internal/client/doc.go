// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the journal command-line client.
//
// Commands are built with cobra and talk to a running journal server through
// [adapter.ServerAdapter]. The presets commands can also resolve the presets
// file locally with the same search order the server uses.
package client
