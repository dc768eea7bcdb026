package testhelper

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"

	"github.com/Nessyi/pumpkin-management/internal/service/cache"
)

// NewMiniredisCache: miniredis 위에서 동작하는 캐시 서비스를 생성한다.
func NewMiniredisCache(t *testing.T) (*cache.Service, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
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

	svc := cache.NewCacheServiceFromClient(client, DiscardLogger())
	t.Cleanup(func() {
		_ = svc.Close()
	})
	return svc, mini
}

// DiscardLogger: 출력을 버리는 로거
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
