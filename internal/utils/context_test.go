// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestInvocationIDCtxKey(t *testing.T) {
	if InvocationIDCtxKey.String() != "invocationID" {
		t.Errorf("expected 'invocationID', got '%s'", InvocationIDCtxKey.String())
	}
}

func TestGetInvocationIDFromContext_Success(t *testing.T) {
	ctx := WithInvocationID(context.Background(), "0192f1c4-aaaa")

	id, ok := GetInvocationIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "0192f1c4-aaaa" {
		t.Errorf("expected '0192f1c4-aaaa', got '%s'", id)
	}
}

func TestGetInvocationIDFromContext_Missing(t *testing.T) {
	id, ok := GetInvocationIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context, got true")
	}
	if id != "" {
		t.Errorf("expected empty id, got '%s'", id)
	}
}

func TestGetInvocationIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), InvocationIDCtxKey, 42)

	if _, ok := GetInvocationIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value, got true")
	}
}

func TestGetInvocationIDFromContext_Empty(t *testing.T) {
	ctx := WithInvocationID(context.Background(), "")

	if _, ok := GetInvocationIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty id, got true")
	}
}
