// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the vault client.
// Includes tools for working with context, type-safe keys, invocation
// identifiers and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// InvocationIDCtxKey is the key used to store the identifier of the current
// CLI invocation in the context. Every log entry written while serving one
// command carries this identifier.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithInvocationID(ctx, utils.NewUUIDGenerator().Generate())
var InvocationIDCtxKey = contextKey("invocationID")

// WithInvocationID returns a copy of ctx carrying id under InvocationIDCtxKey.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, InvocationIDCtxKey, id)
}

// GetInvocationIDFromContext retrieves the invocation identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true  — value is found, is a string and is not empty
//   - ok == false — value is missing or has an unexpected type
func GetInvocationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(InvocationIDCtxKey).(string)
	return id, ok && id != ""
}
