// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, defaulting and
// validation for the acervo server, TUI client and admin CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the TUI client and [GetCLIConfig] for commands that
// parse their own flags.
package config
