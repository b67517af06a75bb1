package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestLiveFeedDeliversBroadcast(t *testing.T) {
	app := newTestApp(t)
	app.wsManager = NewWebSocketManager()
	go app.wsManager.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), "user_id", 5)
		app.LiveFeedHandler(w, r.WithContext(ctx))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial returned error: %v", err)
	}
	defer conn.Close()

	// registration races the first broadcast, so keep publishing until the
	// event comes through
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				app.wsManager.Broadcast("complaint_created", map[string]any{"idcomplaint": 1})
				time.Sleep(20 * time.Millisecond)
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var ev feedEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("expected a broadcast event, got read error: %v", err)
	}
	if ev.Event != "complaint_created" {
		t.Errorf("unexpected event name: %q", ev.Event)
	}
}

func TestLiveFeedRejectsAnonymous(t *testing.T) {
	app := newTestApp(t)
	app.wsManager = NewWebSocketManager()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ws", nil)
	app.LiveFeedHandler(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", rr.Code)
	}
}
