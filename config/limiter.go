package config

import "time"

const (
	LimiterBackendMemory = "memory"
	LimiterBackendRedis  = "redis"
)

// Limiter configures the per-client request limiter. The memory backend is a
// token bucket (RPS/Burst); the redis backend is a fixed window (Window/Max).
type Limiter struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Backend string        `json:"backend" yaml:"backend"`
	RPS     float64       `json:"rps" yaml:"rps"`
	Burst   int           `json:"burst" yaml:"burst"`
	Window  time.Duration `json:"window" yaml:"window"`
	Max     int64         `json:"max" yaml:"max"`
}

func (l *Limiter) applyDefaults() {
	if l.Backend == "" {
		l.Backend = LimiterBackendMemory
	}
	if l.RPS == 0 {
		l.RPS = 10
	}
	if l.Burst == 0 {
		l.Burst = 20
	}
	if l.Window == 0 {
		l.Window = time.Minute
	}
	if l.Max == 0 {
		l.Max = 600
	}
}

type Engagement struct {
	ViewWindow time.Duration `json:"view_window" yaml:"view_window"`
}
