package usage

import "sync/atomic"

// Counter tracks how many upstream API calls were made this session.
// It is compared against a soft limit for display only and never blocks
// further calls.
type Counter struct {
	calls     atomic.Int64
	softLimit int64
}

func NewCounter(softLimit int64) *Counter {
	return &Counter{softLimit: softLimit}
}

// Track records one upstream call and returns the new total.
func (c *Counter) Track() int64 {
	return c.calls.Add(1)
}

func (c *Counter) Calls() int64 {
	return c.calls.Load()
}

func (c *Counter) SoftLimit() int64 {
	return c.softLimit
}
