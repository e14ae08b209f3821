package main

import (
	"context"
	"testing"
	"time"
)

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "firestore")

	if err := run(context.Background()); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestRun_StorageErrorIsReturned(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://u:p@127.0.0.1:1/petster?sslmode=disable&connect_timeout=1")
	t.Setenv("DB_MIGRATE", "false")

	if err := run(context.Background()); err == nil {
		t.Fatalf("expected storage error")
	}
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	t.Setenv("PORT", "0")
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatalf("run did not stop")
	}
}
