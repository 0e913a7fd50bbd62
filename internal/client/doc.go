// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault client application runtime.
//
// It wires the transport adapter, the vault service and the renderer into a
// single invocation and decides which failures end the process.
package client
