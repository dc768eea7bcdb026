package system

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/mem"
)

func TestGetCurrentStats(t *testing.T) {
	c := &Collector{
		virtualMemory: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{Total: 1000, Used: 250, UsedPercent: 25}, nil
		},
		cpuPercent: func(context.Context) ([]float64, error) {
			return []float64{12.5}, nil
		},
	}

	stats, err := c.GetCurrentStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CPUUsage != 12.5 || stats.MemoryUsage != 25 || stats.MemoryTotal != 1000 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Goroutines <= 0 {
		t.Fatalf("expected goroutine count, got %d", stats.Goroutines)
	}
}

func TestGetCurrentStats_MemoryError(t *testing.T) {
	c := &Collector{
		virtualMemory: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return nil, errors.New("boom")
		},
		cpuPercent: func(context.Context) ([]float64, error) {
			return nil, nil
		},
	}

	if _, err := c.GetCurrentStats(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
