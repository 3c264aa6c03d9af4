package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewTelegramSenderRequiresCredentials(t *testing.T) {
	t.Parallel()

	if NewTelegramSender("", "42") != nil || NewTelegramSender("token", " ") != nil {
		t.Fatal("expected nil sender without token and chat id")
	}
}

func TestTelegramSenderSend(t *testing.T) {
	t.Parallel()

	var gotPath, gotChat, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotChat = r.PostForm.Get("chat_id")
		gotText = r.PostForm.Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewTelegramSender("token123", "42")
	sender.baseURL = server.URL

	if err := sender.Send(context.Background(), "Title", "Body"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/bottoken123/sendMessage" || gotChat != "42" || gotText != "Title\nBody" {
		t.Fatalf("unexpected request path=%q chat=%q text=%q", gotPath, gotChat, gotText)
	}
}

func TestTelegramSenderReportsErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chat not found", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewTelegramSender("token", "42")
	sender.baseURL = server.URL
	if err := sender.Send(context.Background(), "t", "b"); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
