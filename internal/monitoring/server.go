package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// MonitoringServer serves system and pool statistics on a side port,
// kept off the public API so the ops dashboard can scrape it directly.
type MonitoringServer struct {
	db      *pgxpool.Pool
	port    int
	started time.Time
}

type SystemStats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int32   `json:"active_connections"`
	IdleConnections   int32   `json:"idle_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	DiskPercent       float64 `json:"disk_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	Uptime            string  `json:"uptime"`
}

func NewMonitoringServer(db *pgxpool.Pool, port int) *MonitoringServer {
	return &MonitoringServer{
		db:      db,
		port:    port,
		started: time.Now(),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()
	r.HandleFunc("/stats", ms.statsHandler).Methods("GET")

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("[Monitoring] Listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Printf("[Monitoring] Server stopped: %v", err)
	}
}

func (ms *MonitoringServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats := ms.collect()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (ms *MonitoringServer) collect() SystemStats {
	stats := SystemStats{
		DatabaseStatus: "healthy",
		Uptime:         time.Since(ms.started).Round(time.Second).String(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := ms.db.Ping(ctx); err != nil {
		stats.DatabaseStatus = "unhealthy"
	}
	stats.ResponseTime = time.Since(start).Milliseconds()

	pool := ms.db.Stat()
	stats.ActiveConnections = pool.AcquiredConns()
	stats.IdleConnections = pool.IdleConns()

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = formatBytes(vm.Used)
		stats.MemoryTotal = formatBytes(vm.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
	}

	return stats
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
