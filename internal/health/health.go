// Package health: 서비스 상태 정보
package health

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	startTime time.Time
	version   = "dev"
	initOnce  sync.Once
	gateway   atomic.Pointer[func() bool]
)

// Init: 서비스 시작 시 호출 (버전 정보 설정)
func Init(v string) {
	initOnce.Do(func() {
		startTime = time.Now()
		if v != "" {
			version = v
		}
	})
}

// SetGatewayProbe: 게이트웨이 연결 상태 확인 함수를 등록한다. nil이면 해제한다.
func SetGatewayProbe(probe func() bool) {
	if probe == nil {
		gateway.Store(nil)
		return
	}
	gateway.Store(&probe)
}

// Response: /health 엔드포인트 표준 응답
type Response struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	Goroutines int    `json:"goroutines"`
	Gateway    string `json:"gateway"` // connected, disconnected, unknown
}

// Get: 현재 상태 반환
// 게이트웨이가 끊겨 있으면 status는 degraded 이다.
func Get() Response {
	resp := Response{
		Status:     "ok",
		Version:    version,
		Uptime:     GetUptime(),
		Goroutines: runtime.NumGoroutine(),
		Gateway:    "unknown",
	}

	if probe := gateway.Load(); probe != nil {
		if (*probe)() {
			resp.Gateway = "connected"
		} else {
			resp.Gateway = "disconnected"
			resp.Status = "degraded"
		}
	}
	return resp
}

// GetVersion: 현재 버전 반환
func GetVersion() string {
	return version
}

// GetUptime: 현재 uptime 반환 (포맷팅된 문자열)
func GetUptime() string {
	if startTime.IsZero() {
		return "0s"
	}
	return formatDuration(time.Since(startTime))
}

// formatDuration: Duration을 사람이 읽기 쉬운 형식으로 변환
func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
