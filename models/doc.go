// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the values exchanged between the vault client layers:
// the command specs produced by the CLI, the outbound request description
// assembled by the request builder, the polymorphic service responses and the
// normalised outcome rendered to the user.
//
// Every value here is created per invocation, read once and discarded.
package models
