package database

import (
	"context"
	"time"
)

// PoolHealth is the connection-pool snapshot surfaced through /healthz.
type PoolHealth struct {
	Reachable bool  `json:"reachable"`
	LatencyMS int64 `json:"latency_ms"`
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
}

// CheckHealth pings the database and snapshots the pool counters. The
// snapshot is returned even when the ping fails so callers can report how
// saturated the pool was at the time.
func (c *Client) CheckHealth(ctx context.Context) (PoolHealth, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)

	stats := c.db.Stats()
	return PoolHealth{
		Reachable: err == nil,
		LatencyMS: time.Since(start).Milliseconds(),
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		MaxOpen:   stats.MaxOpenConnections,
		WaitCount: stats.WaitCount,
	}, err
}
