package system

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats: 호스트 리소스 통계
type Stats struct {
	CPUUsage    float64 `json:"cpuUsage"`    // CPU 사용률 (%)
	MemoryUsage float64 `json:"memoryUsage"` // 메모리 사용률 (%)
	MemoryTotal uint64  `json:"memoryTotal"` // 전체 메모리 (Bytes)
	MemoryUsed  uint64  `json:"memoryUsed"`  // 사용 중인 메모리 (Bytes)
	HeapAlloc   uint64  `json:"heapAlloc"`   // 프로세스 힙 사용량 (Bytes)
	Goroutines  int     `json:"goroutines"`
}

// Collector: 시스템 리소스 통계를 수집한다.
type Collector struct {
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	cpuPercent    func(ctx context.Context) ([]float64, error)
}

// NewCollector 는 동작을 수행한다.
func NewCollector() *Collector {
	return &Collector{
		virtualMemory: mem.VirtualMemoryWithContext,
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			// interval 0: 직전 호출 이후의 사용률을 즉시 반환
			return cpu.PercentWithContext(ctx, 0, false)
		},
	}
}

// GetCurrentStats: 현재 시스템 리소스 상태를 반환한다.
func (c *Collector) GetCurrentStats(ctx context.Context) (*Stats, error) {
	v, err := c.virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory stats: %w", err)
	}

	cpus, err := c.cpuPercent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu stats: %w", err)
	}

	var cpuUsage float64
	if len(cpus) > 0 {
		cpuUsage = cpus[0]
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &Stats{
		CPUUsage:    cpuUsage,
		MemoryUsage: v.UsedPercent,
		MemoryTotal: v.Total,
		MemoryUsed:  v.Used,
		HeapAlloc:   ms.HeapAlloc,
		Goroutines:  runtime.NumGoroutine(),
	}, nil
}
