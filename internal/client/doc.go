// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the habit-sync command-line client.
//
// It maps urfave/cli commands onto [adapter.ServerAdapter] calls and prints
// the server's answers as JSON on the app's writer.
package client
