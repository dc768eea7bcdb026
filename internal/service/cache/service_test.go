package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"
)

type testPayload struct {
	Name string `json:"name"`
}

func newTestCacheService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{mini.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to create valkey client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		t.Fatalf("failed to ping miniredis: %v", err)
	}
	svc := NewCacheServiceFromClient(client, logger)

	t.Cleanup(func() {
		_ = svc.Close()
		mini.Close()
	})

	return svc, mini
}

func TestCacheServiceSetGetAndExists(t *testing.T) {
	svc, mini := newTestCacheService(t)
	ctx := context.Background()

	value := testPayload{Name: "value"}
	if err := svc.Set(ctx, "key", value, time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got testPayload
	found, err := svc.Get(ctx, "key", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found || got.Name != "value" {
		t.Fatalf("unexpected value: %+v (found=%v)", got, found)
	}

	exists, err := svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected key to exist")
	}

	mini.FastForward(2 * time.Second)

	exists, err = svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists after expire failed: %v", err)
	}
	if exists {
		t.Fatalf("expected key to expire")
	}
}

func TestCacheServiceGetMissing(t *testing.T) {
	svc, _ := newTestCacheService(t)

	var got testPayload
	found, err := svc.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Fatalf("expected miss")
	}
}

func TestCacheServiceDel(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "key", testPayload{Name: "x"}, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := svc.Del(ctx, "key"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	exists, err := svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("expected key to be deleted")
	}
}

func TestCacheServiceIsConnected(t *testing.T) {
	svc, _ := newTestCacheService(t)
	if !svc.IsConnected(context.Background()) {
		t.Fatalf("expected connected cache")
	}
}
