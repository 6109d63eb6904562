package auth

import (
	"context"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/model"
)

func TestWithAuthAndFromContext(t *testing.T) {
	ac := AuthContext{
		SessionID: "sess-1",
		Token:     "tok-1",
		User:      model.User{ID: "user-1", Name: "Aidar", Plan: "premium"},
	}

	ctx := WithAuth(context.Background(), ac)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected AuthContext in context")
	}
	if got.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want %q", got.SessionID, "sess-1")
	}
	if got.Token != "tok-1" {
		t.Errorf("Token = %q, want %q", got.Token, "tok-1")
	}
	if got.User.Name != "Aidar" {
		t.Errorf("User.Name = %q, want %q", got.User.Name, "Aidar")
	}
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	if ok {
		t.Error("expected false for missing AuthContext")
	}
	if Token(context.Background()) != "" {
		t.Error("expected empty token for anonymous context")
	}
	if SessionID(context.Background()) != "" {
		t.Error("expected empty session id for anonymous context")
	}
}

func TestIsPremium(t *testing.T) {
	free := WithAuth(context.Background(), AuthContext{User: model.User{Plan: "free"}})
	if IsPremium(free) {
		t.Error("free plan reported premium")
	}
	paid := WithAuth(context.Background(), AuthContext{User: model.User{Plan: "standard"}})
	if !IsPremium(paid) {
		t.Error("standard plan not premium")
	}
	if IsPremium(context.Background()) {
		t.Error("anonymous context premium")
	}
}
