package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	systemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	systemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	heapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_memory_usage_bytes",
		Help: "Go heap allocation of the process, bytes",
	})
)

// StartSystemMetricsCollector запускает фоновый сбор системных метрик.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	if pct, err := cpu.Percent(time.Second, false); err == nil && len(pct) > 0 {
		systemCPUUsage.Set(pct[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.Set(float64(vm.Used))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	heapAlloc.Set(float64(ms.Alloc))
}
