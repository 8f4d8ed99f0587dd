// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements acervoctl, the maintenance command line of the
// catalog. It works directly on the storage backends the server uses, so it
// must run on the server host with the same configuration.
//
// Commands:
//
//	acervoctl users list
//	acervoctl users delete <username> [--yes]
//	acervoctl groups list
//	acervoctl groups show <group>
//	acervoctl admin init [--password-stdin]
//	acervoctl doctor
//	acervoctl version
//
// Every command accepts --format text|json.
package cli
