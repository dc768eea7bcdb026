package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/domain"
	"github.com/Nessyi/pumpkin-management/internal/health"
	"github.com/Nessyi/pumpkin-management/internal/server"
	"github.com/Nessyi/pumpkin-management/internal/service/system"
)

// Run: 게이트웨이와 헬스 서버를 실행하고 SIGINT/SIGTERM 또는 하나의 실패 시 모두 종료한다.
func (r *BotRuntime) Run(ctx context.Context) error {
	if r == nil {
		return fmt.Errorf("runtime must not be nil")
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	health.Init(r.Config.Version)
	health.SetGatewayProbe(r.Session.Ready)
	defer health.SetGatewayProbe(nil)

	g, gctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		return r.runGateway(gctx)
	})

	router := server.NewRouter(gctx, r.Logger, server.RouterOptions{
		CORSOrigins: r.Config.Server.CORSOrigins,
		System:      system.NewCollector(),
		Cache:       r.Stores.Cache,
		Activity:    r.Activity,
	})
	httpServer := server.NewHTTPServer(fmt.Sprintf(":%d", r.Config.Server.Port), router)
	r.Logger.Info("Health server starting", slog.String("addr", httpServer.Addr))
	g.Go(func() error {
		if err := server.Serve(gctx, httpServer, constants.AppTimeout.Shutdown); err != nil {
			return fmt.Errorf("health server failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("runtime stopped: %w", err)
	}
	r.Logger.Info("Runtime stopped")
	return nil
}

// runGateway: 메시지 핸들러를 워커 풀에 연결하고 게이트웨이를 연다. ctx가 끝나면 연결을 닫는다.
func (r *BotRuntime) runGateway(ctx context.Context) error {
	workers := pool.New().WithMaxGoroutines(constants.BotWorkers.MaxConcurrent)

	// Wait 이후의 Go 호출은 panic이므로 종료 플래그로 막는다.
	var (
		mu     sync.RWMutex
		closed bool
	)

	r.Session.OnMessage(ctx, func(msgCtx context.Context, msg *domain.IncomingMessage) {
		mu.RLock()
		defer mu.RUnlock()
		if closed || msgCtx.Err() != nil {
			return
		}
		workers.Go(func() {
			r.Bot.HandleMessage(msgCtx, msg)
		})
	})

	if err := r.Session.Open(); err != nil {
		return err
	}
	r.Logger.Info("Discord gateway connecting...")

	<-ctx.Done()
	r.Logger.Info("Shutting down gateway", slog.Any("cause", context.Cause(ctx)))

	closeErr := r.Session.Close()
	mu.Lock()
	closed = true
	mu.Unlock()
	workers.Wait()
	if closeErr != nil {
		return closeErr
	}
	return nil
}
