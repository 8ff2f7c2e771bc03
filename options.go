package traitgen

import (
	"time"

	"github.com/gogpu/traitgen/internal/rastercache"
)

// Option configures a Generator during creation.
//
// Example:
//
//	// Reproducible run with a progress callback
//	g, err := traitgen.New(cfg, layers,
//	    traitgen.WithSeed(42),
//	    traitgen.WithProgress(func(p traitgen.Progress) { log.Println(p.Percentage) }),
//	)
type Option func(*options)

// options holds optional configuration for a Generator.
type options struct {
	seed        uint64
	seeded      bool
	workers     int
	progress    func(Progress)
	now         func() time.Time
	hash        func(DNA) string
	cacheBudget int
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		workers:     1,
		now:         time.Now,
		hash:        DNA.Hash,
		cacheBudget: rastercache.DefaultBudget,
	}
}

// WithSeed makes trait selection and background hues reproducible.
// With more than one worker each edition's DNA is still reproducible,
// but random background hues are not.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers renders up to n editions in parallel. DNA is still drawn
// in edition order; each worker owns its own compositor for rendering.
// Editions are delivered in increasing order. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithProgress registers a callback invoked once per completed or failed
// edition, before the artwork is handed to the consumer. It runs on the
// goroutine that called Run.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithClock overrides the time source used for metadata dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithDNAHash overrides the digest written to metadata, for example
// WithDNAHash(DNA.HashBLAKE3). The default is DNA.Hash (SHA-1).
func WithDNAHash(fn func(DNA) string) Option {
	return func(o *options) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// WithCacheBudget bounds the bytes of decoded, scaled trait images kept
// between editions.
func WithCacheBudget(bytes int) Option {
	return func(o *options) {
		o.cacheBudget = bytes
	}
}
