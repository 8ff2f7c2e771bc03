package traitgen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/traitgen/internal/rastercache"
)

// UniqueDNATolerance is the number of redraws allowed per edition before
// the search space is declared exhausted.
const UniqueDNATolerance = 10000

// State is the lifecycle state of a Generator.
type State int32

// Generator states.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateStopped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Artwork is the output of one successful edition.
type Artwork struct {
	Edition  int
	DNA      DNA
	Hash     string
	Image    []byte // PNG, Config.Width x Config.Height
	Metadata Metadata

	// Traits is the decoded selection the image was rendered from and
	// the metadata attributes were built from.
	Traits []Resolved
}

// Progress reports one finished edition.
type Progress struct {
	Current    int
	Total      int
	Percentage int
	DNAHash    string // empty when Err is set
	Err        error  // set for the edition that failed the run
}

// Summary describes a finished run.
type Summary struct {
	RunID    string
	State    State
	Produced int
	Total    int
	Retries  int // duplicate DNA redraws over all editions
	Elapsed  time.Duration

	// CacheHits and CacheMisses count trait image lookups; a miss loads
	// and scales the image.
	CacheHits   uint64
	CacheMisses uint64
}

// errStopIteration is returned by the All adapter when the consumer stops
// ranging.
var errStopIteration = errors.New("traitgen: iteration stopped")

// rasterKey identifies a scaled element image in the raster cache.
type rasterKey struct {
	layer   int
	element int
}

// Generator produces the editions of a collection. Runs are sequential:
// one Generator runs at most once at a time.
type Generator struct {
	cfg        Config
	layers     []*Layer
	opts       options
	background bool

	ledger *Ledger
	cache  *rastercache.Cache[rasterKey]
	state  atomic.Int32
	stop   atomic.Bool

	mu     sync.Mutex // guards master
	master *rand.Rand
}

// New validates cfg and layers and returns a Generator in StateIdle.
// Configuration problems are reported as *ConfigError.
func New(cfg Config, layers []*Layer, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateLayers(layers); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var src rand.Source
	if o.seeded {
		src = rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	g := &Generator{
		cfg:    cfg,
		layers: slices.Clone(layers),
		opts:   o,
		ledger: NewLedger(),
		cache:  rastercache.New[rasterKey](o.cacheBudget),
		master: rand.New(src),
	}

	g.background = cfg.Background.Generate
	if g.background && HasBackgroundLayer(layers) {
		g.background = false
		Logger().Info("traitgen: background layer present, synthetic background disabled")
	}
	return g, nil
}

// Config returns the run configuration.
func (g *Generator) Config() Config { return g.cfg }

// Layers returns the layers in paint order.
func (g *Generator) Layers() []*Layer { return slices.Clone(g.layers) }

// BackgroundEnabled reports whether a synthetic background is painted.
func (g *Generator) BackgroundEnabled() bool { return g.background }

// State returns the current lifecycle state.
func (g *Generator) State() State { return State(g.state.Load()) }

// Stop requests cooperative cancellation. The running edition finishes
// and is delivered; no further edition starts.
func (g *Generator) Stop() {
	if g.State() == StateRunning {
		Logger().Warn("traitgen: stop requested")
	}
	g.stop.Store(true)
}

// Reset clears the uniqueness ledger and any pending stop request. Run
// resets implicitly; Reset is ignored while a run is in progress.
func (g *Generator) Reset() {
	if g.State() == StateRunning {
		Logger().Warn("traitgen: reset ignored while running")
		return
	}
	g.reset()
}

func (g *Generator) reset() {
	g.ledger.Reset()
	g.cache.Clear()
	g.stop.Store(false)
}

// Ledger exposes the uniqueness ledger of the current or last run.
func (g *Generator) Ledger() *Ledger { return g.ledger }

// runState is the per-run bookkeeping shared by the loops.
type runState struct {
	id       string
	total    int
	produced int
	retries  int
}

// Run generates editions 1..EditionSize, calling yield with each artwork
// in edition order. Cancelling ctx or calling Stop ends the run at the
// next edition boundary with StateStopped and a nil error. A non-nil
// error from yield ends the run with StateFailed and is returned.
//
// Run fails with *ExhaustionError when no unique DNA can be found and
// with *AssetError when a trait image cannot be loaded; editions already
// delivered remain valid.
func (g *Generator) Run(ctx context.Context, yield func(*Artwork) error) (Summary, error) {
	for {
		cur := State(g.state.Load())
		if cur == StateRunning {
			return Summary{State: cur}, ErrRunning
		}
		if g.state.CompareAndSwap(int32(cur), int32(StateRunning)) {
			break
		}
	}
	g.reset()

	start := time.Now()
	run := &runState{id: uuid.NewString(), total: g.cfg.EditionSize}
	logger := Logger().With("run", run.id)
	logger.Info("traitgen: run started",
		"editions", run.total, "layers", len(g.layers), "workers", g.opts.workers,
		"width", g.cfg.Width, "height", g.cfg.Height)

	var err error
	if g.opts.workers > 1 {
		err = g.runParallel(ctx, run, yield)
	} else {
		err = g.runSequential(ctx, run, yield)
	}

	final := StateFailed
	if err == nil || errors.Is(err, errStopIteration) {
		err = nil
		final = StateStopped
		if run.produced == run.total {
			final = StateCompleted
		}
	}
	g.state.Store(int32(final))

	stats := g.cache.Stats()
	summary := Summary{
		RunID:       run.id,
		State:       final,
		Produced:    run.produced,
		Total:       run.total,
		Retries:     run.retries,
		Elapsed:     time.Since(start),
		CacheHits:   stats.Hits,
		CacheMisses: stats.Misses,
	}
	if err != nil {
		logger.Info("traitgen: run failed", "produced", run.produced, "error", err)
	} else {
		logger.Info("traitgen: run finished", "state", final, "produced", run.produced,
			"retries", run.retries, "elapsed", summary.Elapsed,
			"cache_hits", stats.Hits, "cache_misses", stats.Misses)
	}
	return summary, err
}

// All returns an iterator over the run's artworks. A failure is yielded
// once as the final (nil, err) pair. Breaking out of the loop stops the
// run at the next edition boundary.
//
//	for art, err := range g.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    save(art)
//	}
func (g *Generator) All(ctx context.Context) iter.Seq2[*Artwork, error] {
	return func(yield func(*Artwork, error) bool) {
		_, err := g.Run(ctx, func(a *Artwork) error {
			if !yield(a, nil) {
				return errStopIteration
			}
			return nil
		})
		if err != nil {
			yield(nil, err)
		}
	}
}

func (g *Generator) stopRequested(ctx context.Context) bool {
	return g.stop.Load() || ctx.Err() != nil
}

func (g *Generator) runSequential(ctx context.Context, run *runState, yield func(*Artwork) error) error {
	w := g.newWorker()
	// Cancellation is only observed between editions.
	work := context.WithoutCancel(ctx)

	for edition := 1; edition <= run.total; edition++ {
		if g.stopRequested(ctx) {
			return nil
		}
		art, retries, err := g.produce(work, w, edition)
		run.retries += retries
		if err != nil {
			g.report(run, edition, "", err)
			return err
		}
		if err := g.deliver(run, art, yield); err != nil {
			return err
		}
	}
	return nil
}

type editionResult struct {
	edition int
	art     *Artwork
	retries int
	err     error
}

// job is an edition whose DNA is already committed to the ledger.
type job struct {
	edition int
	dna     DNA
	retries int
}

// runParallel renders whole editions on several workers. DNA is drawn and
// committed by a single feeder in edition order, so an edition never loses
// a combination to a later one. The calling goroutine re-orders results so
// progress and artworks are delivered in strictly increasing edition
// order; editions finished after a failed one are discarded.
func (g *Generator) runParallel(ctx context.Context, run *runState, yield func(*Artwork) error) error {
	work, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	var grp errgroup.Group
	jobs := make(chan job)
	results := make(chan editionResult, g.opts.workers)

	sel := NewSelector(g.newRand())
	grp.Go(func() error {
		defer close(jobs)
		for e := 1; e <= run.total; e++ {
			if g.stopRequested(ctx) {
				return nil
			}
			dna, retries, err := g.search(sel, e)
			if err != nil {
				select {
				case results <- editionResult{edition: e, retries: retries, err: err}:
				case <-work.Done():
				}
				return nil
			}
			select {
			case jobs <- job{edition: e, dna: dna, retries: retries}:
			case <-work.Done():
				return nil
			}
		}
		return nil
	})

	for range g.opts.workers {
		w := g.newWorker()
		grp.Go(func() error {
			for j := range jobs {
				art, err := g.build(work, w, j.edition, j.dna)
				select {
				case results <- editionResult{edition: j.edition, art: art, retries: j.retries, err: err}:
				case <-work.Done():
					return nil
				}
				if err != nil {
					return nil
				}
			}
			return nil
		})
	}

	go func() {
		_ = grp.Wait()
		close(results)
	}()

	pending := make(map[int]editionResult)
	next := 1
	var failure error
	for res := range results {
		if failure != nil {
			continue
		}
		pending[res.edition] = res
		for failure == nil {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			run.retries += r.retries
			if r.err != nil {
				g.report(run, next, "", r.err)
				failure = r.err
			} else if err := g.deliver(run, r.art, yield); err != nil {
				failure = err
			}
			if failure != nil {
				cancel()
				break
			}
			next++
		}
	}
	return failure
}

// deliver emits the progress event and then hands the artwork to yield.
func (g *Generator) deliver(run *runState, art *Artwork, yield func(*Artwork) error) error {
	run.produced++
	g.report(run, art.Edition, art.Hash, nil)
	return yield(art)
}

func (g *Generator) report(run *runState, edition int, hash string, err error) {
	if g.opts.progress == nil {
		return
	}
	g.opts.progress(Progress{
		Current:    edition,
		Total:      run.total,
		Percentage: int(math.Round(float64(edition) / float64(run.total) * 100)),
		DNAHash:    hash,
		Err:        err,
	})
}

// worker owns the per-goroutine state of edition production.
type worker struct {
	rng  *rand.Rand
	sel  *Selector
	comp *Compositor
}

// newRand derives an independent generator from the master source.
func (g *Generator) newRand() *rand.Rand {
	g.mu.Lock()
	s1, s2 := g.master.Uint64(), g.master.Uint64()
	g.mu.Unlock()
	return rand.New(rand.NewPCG(s1, s2))
}

func (g *Generator) newWorker() *worker {
	rng := g.newRand()
	return &worker{
		rng:  rng,
		sel:  NewSelector(rng),
		comp: NewCompositor(g.cfg.Width, g.cfg.Height),
	}
}

// search draws DNA until one is committed to the ledger. The first draw
// is free; up to UniqueDNATolerance redraws follow.
func (g *Generator) search(sel *Selector, edition int) (DNA, int, error) {
	dna, err := sel.Select(g.layers)
	if err != nil {
		return "", 0, err
	}
	retries := 0
	for !g.ledger.TryAdd(dna) {
		if retries >= UniqueDNATolerance {
			return "", retries, &ExhaustionError{Edition: edition, Attempts: retries}
		}
		if dna, err = sel.Select(g.layers); err != nil {
			return "", retries, err
		}
		retries++
	}
	if retries > 0 {
		Logger().Debug("traitgen: duplicate DNA redrawn", "edition", edition, "retries", retries)
	}
	return dna, retries, nil
}

// produce runs select → decode → render → package for one edition.
func (g *Generator) produce(ctx context.Context, w *worker, edition int) (*Artwork, int, error) {
	dna, retries, err := g.search(w.sel, edition)
	if err != nil {
		return nil, retries, err
	}
	art, err := g.build(ctx, w, edition, dna)
	return art, retries, err
}

// build renders and packages an edition whose DNA is committed.
func (g *Generator) build(ctx context.Context, w *worker, edition int, dna DNA) (*Artwork, error) {
	traits := DecodeDNA(dna, g.layers)
	img, err := g.render(ctx, w, traits)
	if err != nil {
		return nil, err
	}

	hash := g.opts.hash(dna)
	return &Artwork{
		Edition:  edition,
		DNA:      dna,
		Hash:     hash,
		Image:    img,
		Metadata: newMetadata(g.cfg, edition, hash, traits, g.opts.now()),
		Traits:   traits,
	}, nil
}

func (g *Generator) render(ctx context.Context, w *worker, traits []Resolved) ([]byte, error) {
	paints := make([]Paint, len(traits))
	for i, t := range traits {
		img, err := g.raster(ctx, w.comp, i, t)
		if err != nil {
			return nil, err
		}
		paints[i] = Paint{Image: img, Blend: t.Layer.Blend, Opacity: t.Layer.Opacity}
	}

	bg := g.cfg.Background
	bg.Generate = g.background
	if err := w.comp.Compose(bg, w.rng, paints); err != nil {
		return nil, err
	}
	return w.comp.Finalize()
}

// raster returns the element image scaled to the output size, loading it
// on a cache miss.
func (g *Generator) raster(ctx context.Context, comp *Compositor, index int, t Resolved) (*image.RGBA, error) {
	key := rasterKey{layer: index, element: t.Element.ID}
	if img, ok := g.cache.Get(key); ok {
		return img, nil
	}

	src, err := t.Element.Source.Load(ctx)
	if err != nil {
		return nil, &AssetError{Layer: t.Layer.Name, Element: t.Element.Filename, Err: err}
	}
	img := comp.Scale(src)
	g.cache.Put(key, img)
	return img, nil
}

// Preview renders one random selection without consulting or updating
// the ledger. It may be called at any time, including during a run.
func (g *Generator) Preview(ctx context.Context) ([]byte, []Resolved, error) {
	w := g.newWorker()
	dna, err := w.sel.Select(g.layers)
	if err != nil {
		return nil, nil, err
	}
	traits := DecodeDNA(dna, g.layers)
	img, err := g.render(ctx, w, traits)
	if err != nil {
		return nil, nil, err
	}
	return img, traits, nil
}
