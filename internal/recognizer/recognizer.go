// Package recognizer classifies unistroke gestures against a library of named
// templates using either the $1 golden-section rotation search or the
// Protractor closed-form distance.
package recognizer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

// ErrEmptyStore is returned by Recognize when there is nothing to match against.
var ErrEmptyStore = errors.New("recognizer: no templates")

const (
	DefaultNumPoints  = 64
	DefaultSquareSize = 250.0
)

// Result is the best match for an input stroke. Score is 1-d/halfDiagonal for
// Classic and 1/d for Protractor; Exact is set when the distance is zero.
// Variant indexes the matched template in Templates(Name).
type Result struct {
	Name     string
	Variant  int
	Score    float64
	Distance float64
	Exact    bool
}

// Hook observes every successful recognition. It runs after the template
// store has been released, so it may call back into the Recognizer.
type Hook func(input stroke.Canonical, result Result)

// Recognizer owns a template store and the configuration every template in it
// was normalized with. It is safe for concurrent use.
type Recognizer struct {
	mu sync.RWMutex

	numPoints      int
	squareSize     float64
	halfDiagonal   float64
	angleRange     float64
	anglePrecision float64
	metric         Metric

	originals   []models.GestureConfig
	store       *store
	onRecognize Hook
	logger      *slog.Logger
}

// Option configures a Recognizer at construction.
type Option func(*Recognizer)

func WithNumPoints(n int) Option {
	return func(r *Recognizer) {
		r.numPoints = n
	}
}

func WithSquareSize(size float64) Option {
	return func(r *Recognizer) {
		r.squareSize = size
	}
}

func WithMetric(m Metric) Option {
	return func(r *Recognizer) {
		r.metric = m
	}
}

// WithTemplates replaces the built-in catalogue as the original template set.
// Calling it with no gestures yields an empty store.
func WithTemplates(gestures ...models.GestureConfig) Option {
	return func(r *Recognizer) {
		r.originals = append([]models.GestureConfig{}, gestures...)
	}
}

func WithOnRecognize(hook Hook) Option {
	return func(r *Recognizer) {
		r.onRecognize = hook
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Recognizer) {
		r.logger = l
	}
}

// New builds a Recognizer and loads its original template set.
func New(opts ...Option) (*Recognizer, error) {
	r := &Recognizer{
		numPoints:      DefaultNumPoints,
		squareSize:     DefaultSquareSize,
		angleRange:     deg2rad(45.0),
		anglePrecision: deg2rad(2.0),
		metric:         Classic,
		originals:      DefaultTemplates(),
		store:          newStore(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if r.numPoints < 2 {
		return nil, fmt.Errorf("recognizer: num points %d must be at least 2", r.numPoints)
	}
	if !(r.squareSize > 0) || math.IsInf(r.squareSize, 0) {
		return nil, fmt.Errorf("recognizer: square size %v must be positive", r.squareSize)
	}
	if !r.metric.Valid() {
		return nil, fmt.Errorf("recognizer: %v", r.metric)
	}

	diagonal := math.Sqrt(float64(r.squareSize*r.squareSize) + float64(r.squareSize*r.squareSize))
	r.halfDiagonal = diagonal / 2

	if err := r.ResetTemplates(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recognizer) NumPoints() int {
	return r.numPoints
}

func (r *Recognizer) SquareSize() float64 {
	return r.squareSize
}

func (r *Recognizer) Metric() Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metric
}

// SetMetric switches the active metric. Templates carry the data for both
// metrics, so nothing is recomputed.
func (r *Recognizer) SetMetric(m Metric) error {
	if !m.Valid() {
		return fmt.Errorf("recognizer: %v", m)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metric = m
	return nil
}

// Recognize normalizes points once and returns the closest template's name
// and score. On ties the template seen first wins.
func (r *Recognizer) Recognize(points []models.Point) (Result, error) {
	input, err := stroke.Normalize(points, r.numPoints, r.squareSize)
	if err != nil {
		return Result{}, fmt.Errorf("normalize input: %w", err)
	}

	r.mu.RLock()
	if r.store.len() == 0 {
		r.mu.RUnlock()
		return Result{}, ErrEmptyStore
	}
	metric := r.metric
	s := r.strategyFor(metric)
	best := math.Inf(1)
	var match *Template
	var variant int
	r.store.each(func(t *Template, i int) {
		if d := s.distance(input, t); d < best {
			best = d
			match = t
			variant = i
		}
	})
	r.mu.RUnlock()

	if match == nil {
		return Result{}, fmt.Errorf("no template at a finite distance: %w", stroke.ErrDegenerateGeometry)
	}

	result := Result{
		Name:     match.Name,
		Variant:  variant,
		Score:    s.score(best),
		Distance: best,
		Exact:    best == 0,
	}
	r.logger.Debug("Recognized stroke",
		"name", result.Name,
		"score", result.Score,
		"distance", result.Distance,
		"metric", metric.String(),
	)
	if r.onRecognize != nil {
		r.onRecognize(input, result)
	}
	return result, nil
}

// AddTemplate normalizes points and appends them as a new variant of name,
// returning how many variants name now has.
func (r *Recognizer) AddTemplate(name string, points []models.Point) (int, error) {
	t, err := newTemplate(name, points, r.numPoints, r.squareSize)
	if err != nil {
		return 0, fmt.Errorf("template %q: %w", name, err)
	}

	r.mu.Lock()
	n := r.store.add(t)
	r.mu.Unlock()

	r.logger.Debug("Added template", "name", name, "variants", n)
	return n, nil
}

// AddTemplateString is AddTemplate for a stroke in "x,y;x,y" form.
func (r *Recognizer) AddTemplateString(name, s string) (int, error) {
	points, err := stroke.ParsePoints(s)
	if err != nil {
		return 0, fmt.Errorf("template %q: %w", name, err)
	}
	return r.AddTemplate(name, points)
}

// ResetTemplates discards every template and reloads the original set. The
// store is left unchanged if any original fails to normalize.
func (r *Recognizer) ResetTemplates() error {
	fresh := newStore()
	for _, g := range r.originals {
		for i, s := range g.Templates {
			points, err := stroke.ParsePoints(s)
			if err != nil {
				return fmt.Errorf("template %q #%d: %w", g.Name, i, err)
			}
			t, err := newTemplate(g.Name, points, r.numPoints, r.squareSize)
			if err != nil {
				return fmt.Errorf("template %q #%d: %w", g.Name, i, err)
			}
			t.builtin = true
			fresh.add(t)
		}
	}

	r.mu.Lock()
	r.store = fresh
	r.mu.Unlock()

	r.logger.Debug("Reset templates", "classes", len(fresh.names), "templates", fresh.len())
	return nil
}

// DeleteUserTemplates removes every template added after construction or the
// last reset, and returns the number of gesture classes left.
func (r *Recognizer) DeleteUserTemplates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.keepBuiltin()
	return len(r.store.names)
}

// Classes lists gesture names in insertion order with their variant counts.
func (r *Recognizer) Classes() []Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.classes()
}

// Templates returns the variants stored under name.
func (r *Recognizer) Templates(name string) []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.variants(name)
}

// Len is the total number of templates across all classes.
func (r *Recognizer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.len()
}
