package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/pkg/errors"
)

// Service: Valkey 클라이언트를 래핑하여 JSON 기반 캐싱 기능을 제공하는 서비스
type Service struct {
	client    valkey.Client
	logger    *slog.Logger
	closeOnce sync.Once
}

// Config: Valkey 연결 설정을 담는 구조체
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewCacheService: 새로운 Valkey 캐시 서비스 인스턴스를 생성하고 연결을 수립한다.
func NewCacheService(cfg Config, logger *slog.Logger) (*Service, error) {
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{addr},
		Password:          cfg.Password,
		SelectDB:          cfg.DB,
		ConnWriteTimeout:  constants.ValkeyConfig.ConnWriteTimeout,
		BlockingPoolSize:  constants.ValkeyConfig.BlockingPoolSize,
		PipelineMultiplex: constants.ValkeyConfig.PipelineMultiplex,
		Dialer:            net.Dialer{Timeout: constants.ValkeyConfig.DialTimeout},
	})
	if err != nil {
		return nil, errors.NewCacheError("failed to create cache client", "init", "", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ValkeyConfig.ReadyTimeout)
	defer cancel()

	// Ping 테스트
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, errors.NewCacheError("failed to connect to cache store", "ping", "", err)
	}

	logger.Info("Cache store connected",
		slog.String("addr", addr),
		slog.Int("db", cfg.DB),
		slog.Int("pool_size", constants.ValkeyConfig.BlockingPoolSize),
	)

	return NewCacheServiceFromClient(client, logger), nil
}

// NewCacheServiceFromClient: 이미 생성된 클라이언트로 서비스를 구성한다.
func NewCacheServiceFromClient(client valkey.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Get: 키에 해당하는 값을 조회하여 dest에 언마샬링한다.
// 키가 없으면 (false, nil)을 반환한다.
func (c *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	resp := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if valkey.IsValkeyNil(resp.Error()) {
		return false, nil
	}
	if resp.Error() != nil {
		c.logger.Error("Cache get operation failed", slog.String("key", key), slog.Any("error", resp.Error()))
		return false, errors.NewCacheError("get failed", "get", key, resp.Error())
	}

	value, err := resp.ToString()
	if err != nil {
		c.logger.Error("Cache value conversion failed", slog.String("key", key), slog.Any("error", err))
		return false, errors.NewCacheError("conversion failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache value unmarshal failed", slog.String("key", key), slog.Any("error", err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}

	return true, nil
}

// Set: 값을 JSON으로 마샬링하여 키에 저장한다. (TTL 지정 가능)
func (c *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	var cmd valkey.Completed
	if ttl > 0 {
		cmd = c.client.B().Set().Key(key).Value(string(jsonData)).ExSeconds(int64(ttl.Seconds())).Build()
	} else {
		cmd = c.client.B().Set().Key(key).Value(string(jsonData)).Build()
	}

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Error("Cache set failed", slog.String("key", key), slog.Any("error", err))
		return errors.NewCacheError("set failed", "set", key, err)
	}

	return nil
}

// Del: 지정된 키를 삭제한다.
func (c *Service) Del(ctx context.Context, key string) error {
	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		c.logger.Error("Cache delete failed", slog.String("key", key), slog.Any("error", err))
		return errors.NewCacheError("delete failed", "del", key, err)
	}
	return nil
}

// Exists: 키가 존재하는지 확인한다.
func (c *Service) Exists(ctx context.Context, key string) (bool, error) {
	resp := c.client.Do(ctx, c.client.B().Exists().Key(key).Build())
	if resp.Error() != nil {
		c.logger.Error("Cache exists failed", slog.String("key", key), slog.Any("error", resp.Error()))
		return false, errors.NewCacheError("exists failed", "exists", key, resp.Error())
	}

	count, err := resp.AsInt64()
	if err != nil {
		return false, errors.NewCacheError("exists conversion failed", "exists", key, err)
	}

	return count > 0, nil
}

// Close: 캐시 스토어 연결을 안전하게 종료한다.
func (c *Service) Close() error {
	c.closeOnce.Do(func() {
		if c.client == nil {
			return
		}

		c.client.Close()
		c.logger.Info("Cache store disconnected")
	})

	return nil
}

// IsConnected: 캐시 스토어와 연결되어 있는지(PING 응답 여부) 확인한다.
func (c *Service) IsConnected(ctx context.Context) bool {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error() == nil
}
