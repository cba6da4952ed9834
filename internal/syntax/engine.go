package syntax

// LargeFileThreshold is the line count above which the initial highlight of
// a document runs through the chunked scheduler instead of a single
// synchronous pass on open.
const LargeFileThreshold = 5000

// pendingEdit collapses edit notifications that arrive before scheduling
// runs: only the minimum affected line matters, together with the anchor
// checkpoint captured before that line's stride was invalidated.
type pendingEdit struct {
	active bool
	min    int
	anchor Checkpoint
}

// Engine coordinates highlighting for one open document. It owns the
// document's span cache and checkpoint store, receives edit notifications
// from the editor, and schedules bounded re-highlight work.
//
// The engine is single-threaded by contract: every method must be called
// from the goroutine that drives the host interaction loop. Yielding
// between batches, not preemption, is what keeps large files responsive.
type Engine struct {
	doc         DocumentReader
	registry    *Registry
	grammar     *Grammar
	spans       *SpanCache
	checkpoints *CheckpointStore
	sched       scheduler
	metrics     *Metrics

	generation uint64
	pending    pendingEdit
	wake       func()
	enabled    bool
	closed     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWake sets the callback the engine invokes when it has work left and
// wants another Tick soon. The host binds this to whatever scheduling
// primitive it has: a timer, a task queue, or an event posted to its loop.
func WithWake(wake func()) Option {
	return func(e *Engine) {
		e.wake = wake
	}
}

// WithHighlightingDisabled starts the engine with highlighting off; every
// line then reads as a single default-style span.
func WithHighlightingDisabled() Option {
	return func(e *Engine) {
		e.enabled = false
	}
}

// New creates an engine for a document. The language identifier is resolved
// against the registry; an unknown language falls back to plain text rather
// than failing. Documents at or under LargeFileThreshold lines are
// highlighted before New returns; larger ones are scheduled in batches.
func New(doc DocumentReader, languageID string, registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		doc:         doc,
		registry:    registry,
		spans:       NewSpanCache(doc.LineCount()),
		checkpoints: NewCheckpointStore(),
		metrics:     &Metrics{},
		wake:        func() {},
		enabled:     true,
	}
	e.grammar = e.lookupGrammar(languageID)
	e.sched = scheduler{
		doc:         doc,
		spans:       e.spans,
		checkpoints: e.checkpoints,
		grammar:     e.grammar,
		metrics:     e.metrics,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.enabled && !e.grammar.IsPlainText() {
		e.pending = pendingEdit{active: true, min: 0, anchor: Checkpoint{}}
		if doc.LineCount() <= LargeFileThreshold {
			e.drain()
		} else {
			e.wake()
		}
	}
	return e
}

// OnEdit notifies the engine that lines [line, line+removed) were replaced
// by `inserted` lines. Pure in-line modification is removed=1, inserted=1
// (or 0,0). Spans from line onward are pending re-highlight; downstream
// checkpoints are invalidated; any in-flight job is superseded.
func (e *Engine) OnEdit(line, removed, inserted int) {
	if e.closed || !e.enabled || e.grammar.IsPlainText() {
		return
	}
	if line < 0 {
		line = 0
	}

	// A job caught mid-flight is superseded: bump the generation fence and
	// abort it. The half-finished pass recorded checkpoints without
	// committing spans for the lines past where it stopped, so its records
	// must not survive as convergence references either (see below).
	superseded := false
	if e.sched.active() {
		e.generation++
		e.sched.abort()
		superseded = true
	}

	// Collapse with any pending edit, renumbering its line under this edit.
	min := line
	var anchor Checkpoint
	usePrev := false
	pendingAbove := -1
	if e.pending.active {
		pm := e.pending.min
		if pm > line {
			if pm < line+removed {
				pm = line
			} else {
				pm += inserted - removed
			}
		}
		if pm <= line {
			min = pm
			anchor = e.pending.anchor
			usePrev = true
		} else {
			pendingAbove = pm
		}
	}
	if !usePrev {
		// The anchor must be captured before invalidation drops the
		// checkpoint of the stride containing the edit; its state depends
		// only on lines above the edit and is still valid.
		anchor = e.checkpoints.NearestAtOrBefore(line)
	}

	e.checkpoints.InvalidateFrom(line)
	e.checkpoints.Shift(line, removed, inserted)
	switch {
	case superseded:
		// Invalidation just shadowed the aborted job's partial records;
		// none of them can vouch for the unwritten tail.
		e.checkpoints.DropPriors()
	case pendingAbove >= 0:
		// Shadows between this edit and the still-pending one above it
		// describe a region whose spans are already stale.
		e.checkpoints.DropPriorsThrough(pendingAbove)
	}
	e.spans.Splice(line, removed, inserted)

	e.pending = pendingEdit{active: true, min: min, anchor: anchor}
	e.wake()
}

// OnLanguageChanged switches the document's grammar and schedules a full
// re-highlight from line 0 with full checkpoint and span discard.
func (e *Engine) OnLanguageChanged(languageID string) {
	if e.closed {
		return
	}
	if e.sched.active() {
		e.generation++
		e.sched.cancel()
	}
	e.grammar = e.lookupGrammar(languageID)
	e.sched.grammar = e.grammar
	e.checkpoints.Clear()
	e.spans.Clear(e.doc.LineCount())
	if e.enabled && !e.grammar.IsPlainText() {
		e.pending = pendingEdit{active: true, min: 0, anchor: Checkpoint{}}
		e.wake()
	} else {
		e.pending = pendingEdit{}
	}
}

// SetEnabled turns highlighting on or off at runtime. Disabling cancels
// in-flight work and resets every line to plain text; enabling schedules a
// full re-highlight.
func (e *Engine) SetEnabled(enabled bool) {
	if e.closed || enabled == e.enabled {
		return
	}
	e.enabled = enabled
	if e.sched.active() {
		e.generation++
		e.sched.cancel()
	}
	e.checkpoints.Clear()
	e.spans.Clear(e.doc.LineCount())
	if enabled && !e.grammar.IsPlainText() {
		e.pending = pendingEdit{active: true, min: 0, anchor: Checkpoint{}}
		e.wake()
	} else {
		e.pending = pendingEdit{}
	}
}

// Tick runs one cooperative scheduling slice: it starts any pending job
// and processes at most Batch lines. Returns true if more work remains, in
// which case the wake callback has been invoked.
func (e *Engine) Tick() bool {
	if e.closed {
		return false
	}
	if e.pending.active {
		e.generation++
		e.sched.schedule(e.pending.anchor, e.generation)
		e.pending = pendingEdit{}
	}
	done := e.sched.runSlice(e.generation)
	if !done {
		e.wake()
		return true
	}
	return e.pending.active
}

// SpansFor returns the latest committed spans for a line. A line that has
// never been highlighted yields one default span covering the whole line.
// Implements the renderer's highlight provider contract.
func (e *Engine) SpansFor(line int) []Span {
	if spans := e.spans.Spans(line); spans != nil {
		return spans
	}
	if line < 0 || line >= e.doc.LineCount() {
		return defaultLineSpans(0)
	}
	return defaultLineSpans(len(e.doc.Line(line)))
}

// IsHighlighting reports whether highlight work is pending or in flight.
// Usable as a progress indicator signal.
func (e *Engine) IsHighlighting() bool {
	return !e.closed && (e.pending.active || e.sched.active())
}

// Enabled reports whether highlighting is on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Language returns the active grammar's language name.
func (e *Engine) Language() string {
	return e.grammar.Name()
}

// Metrics returns a snapshot of the engine's work counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.Snapshot()
}

// Close tears down the span cache and checkpoint store. The engine must
// not be used afterwards; all methods become no-ops.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.sched.cancel()
	e.pending = pendingEdit{}
	e.checkpoints.Clear()
	e.spans.Clear(0)
}

// drain runs the scheduler to completion synchronously. Used for the
// initial pass over small documents.
func (e *Engine) drain() {
	for e.Tick() {
	}
}

func (e *Engine) lookupGrammar(languageID string) *Grammar {
	if e.registry == nil {
		return PlainText()
	}
	return e.registry.LookupOrPlain(languageID)
}
