package domain

import "time"

// CacheStats is a point-in-time snapshot of cache store counters.
type CacheStats struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
	Sets        uint64 `json:"sets"`
	Entries     int    `json:"entries"`
}

// HitRate returns the hit percentage over all lookups, 0 when no lookups
// have happened yet.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// ExecStats tracks running totals over all execution attempts. The totals
// are updated incrementally after every attempt, never recomputed from
// history.
type ExecStats struct {
	Executions  int64         `json:"executions"`
	Successes   int64         `json:"successes"`
	Failures    int64         `json:"failures"`
	TotalTime   time.Duration `json:"total_time"`
	AverageTime time.Duration `json:"average_time"`
}

// Record folds one attempt into the totals.
func (s *ExecStats) Record(success bool, elapsed time.Duration) {
	s.Executions++
	if success {
		s.Successes++
	} else {
		s.Failures++
	}
	s.TotalTime += elapsed
	s.AverageTime = s.TotalTime / time.Duration(s.Executions)
}
