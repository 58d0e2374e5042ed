package realpoly

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/jonathanmweiss/go-realpoly/field"
	"golang.org/x/sync/errgroup"
)

// evalChunkSize is the number of points one goroutine evaluates in EvaluateAll.
const evalChunkSize = 256

var (
	errNoSamples       = errors.New("number of samples must be positive")
	errInvalidInterval = errors.New("interval bounds must be finite with lo <= hi")
)

type samplerKey struct {
	n      int
	lo, hi float64
}

type evaluationCache struct {
	sync.Locker
	points map[samplerKey][]float64
}

func newEvaluationCache() *evaluationCache {
	return &evaluationCache{
		Locker: &sync.Mutex{},
		points: make(map[samplerKey][]float64),
	}
}

func (e *evaluationCache) loadPoints(k samplerKey) []float64 {
	e.Lock()
	defer e.Unlock()

	if points, ok := e.points[k]; ok {
		return points
	}

	return nil
}

func (e *evaluationCache) storePoints(k samplerKey, points []float64) {
	e.Lock()
	defer e.Unlock()

	if _, ok := e.points[k]; ok {
		return
	}

	e.points[k] = points
}

// Sampler produces evenly spaced evaluation points and caches them per (n, lo, hi).
type Sampler struct {
	cache *evaluationCache
}

func NewSampler() *Sampler {
	return &Sampler{cache: newEvaluationCache()}
}

// Points returns n evenly spaced points from lo to hi inclusive.
// For n == 1 it returns just lo.
func (s *Sampler) Points(n int, lo, hi float64) ([]float64, error) {
	if n <= 0 {
		return nil, errNoSamples
	}

	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, errInvalidInterval
	}

	k := samplerKey{n: n, lo: lo, hi: hi}
	if points := s.cache.loadPoints(k); points != nil {
		return slices.Clone(points), nil
	}

	points := make([]float64, n)
	points[0] = lo

	if n > 1 {
		step := (hi - lo) / float64(n-1)
		for i := 1; i < n-1; i++ {
			points[i] = lo + float64(i)*step
		}

		points[n-1] = hi
	}

	s.cache.storePoints(k, points)

	return slices.Clone(points), nil
}

// EvaluateAll evaluates p at every x; ys[i] corresponds to xs[i].
// Work is split into chunks spread over at most WithConcurrency goroutines.
func (c *Calculator) EvaluateAll(ctx context.Context, p *field.Polynomial, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	chunks := 0
	for start := 0; start < len(xs); start += evalChunkSize {
		end := min(start+evalChunkSize, len(xs))
		chunks++

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for i := start; i < end; i++ {
				ys[i] = c.pr.Evaluate(p, xs[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("points", len(xs)).
		Int("chunks", chunks).
		Msg("batch evaluation done")

	return ys, nil
}

// Sample evaluates p at n evenly spaced points on [lo, hi].
func (c *Calculator) Sample(ctx context.Context, p *field.Polynomial, n int, lo, hi float64) (xs, ys []float64, err error) {
	xs, err = c.sampler.Points(n, lo, hi)
	if err != nil {
		return nil, nil, err
	}

	ys, err = c.EvaluateAll(ctx, p, xs)
	if err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}
