package filekit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter   prometheus.Counter
//	    loadHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordLoad(tokens int, duration time.Duration, err error) {
//	    p.loadCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each load operation.
	// tokens is the number of tokens returned, duration is the total time
	// taken, err is nil if successful.
	RecordLoad(tokens int, duration time.Duration, err error)

	// RecordLoadMany is called after each multi-file load operation.
	// files is the number of files attempted.
	RecordLoadMany(files int, duration time.Duration, err error)

	// RecordPick is called after each random line selection.
	RecordPick(duration time.Duration, err error)

	// RecordList is called after each directory listing.
	// entries is the number of names returned.
	RecordList(entries int, duration time.Duration, err error)

	// RecordAppend is called after each append operation.
	// size is the number of bytes handed to the write.
	RecordAppend(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordLoadMany(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPick(time.Duration, error)          {}
func (NoopMetricsCollector) RecordList(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordAppend(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadTokens     atomic.Int64
	LoadTotalNanos atomic.Int64
	LoadManyCount  atomic.Int64
	LoadManyErrors atomic.Int64
	LoadManyFiles  atomic.Int64
	PickCount      atomic.Int64
	PickErrors     atomic.Int64
	PickTotalNanos atomic.Int64
	ListCount      atomic.Int64
	ListErrors     atomic.Int64
	AppendCount    atomic.Int64
	AppendErrors   atomic.Int64
	AppendedBytes  atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(tokens int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTokens.Add(int64(tokens))
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordLoadMany implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoadMany(files int, duration time.Duration, err error) {
	b.LoadManyCount.Add(1)
	b.LoadManyFiles.Add(int64(files))
	if err != nil {
		b.LoadManyErrors.Add(1)
	}
}

// RecordPick implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPick(duration time.Duration, err error) {
	b.PickCount.Add(1)
	b.PickTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PickErrors.Add(1)
	}
}

// RecordList implements MetricsCollector.
func (b *BasicMetricsCollector) RecordList(entries int, duration time.Duration, err error) {
	b.ListCount.Add(1)
	if err != nil {
		b.ListErrors.Add(1)
	}
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(size int, duration time.Duration, err error) {
	b.AppendCount.Add(1)
	if err != nil {
		b.AppendErrors.Add(1)
		return
	}
	b.AppendedBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadTokens:     b.LoadTokens.Load(),
		LoadAvgNanos:   b.getAvgLoadNanos(),
		LoadManyCount:  b.LoadManyCount.Load(),
		LoadManyErrors: b.LoadManyErrors.Load(),
		LoadManyFiles:  b.LoadManyFiles.Load(),
		PickCount:      b.PickCount.Load(),
		PickErrors:     b.PickErrors.Load(),
		PickAvgNanos:   b.getAvgPickNanos(),
		ListCount:      b.ListCount.Load(),
		ListErrors:     b.ListErrors.Load(),
		AppendCount:    b.AppendCount.Load(),
		AppendErrors:   b.AppendErrors.Load(),
		AppendedBytes:  b.AppendedBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgPickNanos() int64 {
	count := b.PickCount.Load()
	if count == 0 {
		return 0
	}
	return b.PickTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount      int64
	LoadErrors     int64
	LoadTokens     int64
	LoadAvgNanos   int64
	LoadManyCount  int64
	LoadManyErrors int64
	LoadManyFiles  int64
	PickCount      int64
	PickErrors     int64
	PickAvgNanos   int64
	ListCount      int64
	ListErrors     int64
	AppendCount    int64
	AppendErrors   int64
	AppendedBytes  int64
}
