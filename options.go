package filekit

import (
	"log/slog"
	"math/rand"
	"os"

	"github.com/dstevens/filekit/fsys"
)

type options struct {
	fs               fsys.FileSystem
	logger           *Logger
	metricsCollector MetricsCollector
	rng              *rand.Rand
}

// Option configures Kit construction.
type Option func(*options)

// WithFileSystem configures the filesystem backend the Kit operates on.
//
// If nil is passed, fsys.Default is used.
func WithFileSystem(fs fsys.FileSystem) Option {
	return func(o *options) {
		if fs == nil {
			fs = fsys.Default
		}
		o.fs = fs
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &filekit.BasicMetricsCollector{}
//	kit := filekit.New(filekit.WithMetricsCollector(metrics))
//	// ... use kit ...
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, Avg latency: %dns\n", stats.LoadCount, stats.LoadAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithRand injects the random source used by PickRandom. The Kit
// serializes access to it, so the source itself does not need to be safe
// for concurrent use.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithRandomSeed seeds a fresh random source with the given seed.
// Useful for reproducible picks in tests.
func WithRandomSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		fs:               fsys.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// scanSettings is the token pipeline configuration shared by the load
// operations and PickRandom.
type scanSettings struct {
	sep         byte
	skipEmpty   bool
	filter      LineFilter
	compression Compression
}

type loadOptions struct {
	scanSettings
}

type pickOptions struct {
	scanSettings
	twoPass bool
}

type listOptions struct {
	filter DirFilter
}

type appendOptions struct {
	create bool
	perm   os.FileMode
	lock   bool
	sync   bool
}

// LoadOption configures Load, LoadInts, LoadReader and LoadMany calls.
type LoadOption interface {
	applyLoad(*loadOptions)
}

// PickOption configures PickRandom calls.
type PickOption interface {
	applyPick(*pickOptions)
}

// ListOption configures ListFiles calls.
type ListOption interface {
	applyList(*listOptions)
}

// AppendOption configures Append and AppendString calls.
type AppendOption interface {
	applyAppend(*appendOptions)
}

// ScanOption configures the token pipeline shared by the load operations
// and PickRandom; it satisfies both LoadOption and PickOption.
type ScanOption interface {
	LoadOption
	PickOption
}

type scanOptionFunc func(*scanSettings)

func (f scanOptionFunc) applyLoad(o *loadOptions) { f(&o.scanSettings) }
func (f scanOptionFunc) applyPick(o *pickOptions) { f(&o.scanSettings) }

type pickOptionFunc func(*pickOptions)

func (f pickOptionFunc) applyPick(o *pickOptions) { f(o) }

type listOptionFunc func(*listOptions)

func (f listOptionFunc) applyList(o *listOptions) { f(o) }

type appendOptionFunc func(*appendOptions)

func (f appendOptionFunc) applyAppend(o *appendOptions) { f(o) }

// WithSeparator sets the single-byte token separator. The default is '\n'.
func WithSeparator(sep byte) ScanOption {
	return scanOptionFunc(func(s *scanSettings) { s.sep = sep })
}

// WithFilter drops tokens matching the filter before they are returned
// or counted as candidates.
func WithFilter(filter LineFilter) ScanOption {
	return scanOptionFunc(func(s *scanSettings) { s.filter = filter })
}

// WithSkipEmpty controls whether empty tokens are dropped. The load
// operations drop them by default; PickRandom keeps them by default.
func WithSkipEmpty(skip bool) ScanOption {
	return scanOptionFunc(func(s *scanSettings) { s.skipEmpty = skip })
}

// WithCompression forces a decompression codec instead of detecting one
// from the path extension.
func WithCompression(c Compression) ScanOption {
	return scanOptionFunc(func(s *scanSettings) { s.compression = c })
}

// WithTwoPass makes PickRandom count tokens first and re-read up to a
// uniformly chosen index, instead of reservoir sampling in one pass.
// Both passes must observe the same file contents.
func WithTwoPass() PickOption {
	return pickOptionFunc(func(o *pickOptions) { o.twoPass = true })
}

// WithDirFilter narrows ListFiles results.
func WithDirFilter(filter DirFilter) ListOption {
	return listOptionFunc(func(o *listOptions) { o.filter = filter })
}

// WithoutCreate makes Append fail with ErrNotFound instead of creating a
// missing file.
func WithoutCreate() AppendOption {
	return appendOptionFunc(func(o *appendOptions) { o.create = false })
}

// WithPerm sets the permission bits used when Append creates the file.
// The default is 0o644.
func WithPerm(perm os.FileMode) AppendOption {
	return appendOptionFunc(func(o *appendOptions) { o.perm = perm })
}

// WithFileLock holds an exclusive advisory lock on the file for the
// duration of the write. Requires a backend whose files expose an OS
// descriptor (the in-memory backend does not).
func WithFileLock() AppendOption {
	return appendOptionFunc(func(o *appendOptions) { o.lock = true })
}

// WithSync flushes file contents to stable storage after the write,
// before close.
func WithSync() AppendOption {
	return appendOptionFunc(func(o *appendOptions) { o.sync = true })
}

func applyLoadOptions(optFns []LoadOption) loadOptions {
	o := loadOptions{scanSettings: scanSettings{sep: '\n', skipEmpty: true}}
	for _, fn := range optFns {
		if fn != nil {
			fn.applyLoad(&o)
		}
	}
	return o
}

func applyPickOptions(optFns []PickOption) pickOptions {
	o := pickOptions{scanSettings: scanSettings{sep: '\n'}}
	for _, fn := range optFns {
		if fn != nil {
			fn.applyPick(&o)
		}
	}
	return o
}

func applyListOptions(optFns []ListOption) listOptions {
	var o listOptions
	for _, fn := range optFns {
		if fn != nil {
			fn.applyList(&o)
		}
	}
	return o
}

func applyAppendOptions(optFns []AppendOption) appendOptions {
	o := appendOptions{create: true, perm: 0o644}
	for _, fn := range optFns {
		if fn != nil {
			fn.applyAppend(&o)
		}
	}
	return o
}
