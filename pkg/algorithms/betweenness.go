package algorithms

import (
	"container/list"
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/interactome/hubrank/pkg/graph"
	"github.com/interactome/hubrank/pkg/parallel"
	"github.com/interactome/hubrank/pkg/pools"
)

// BetweennessOptions configures the Brandes betweenness computation.
// Sampling is explicit, caller-visible configuration: there is no implicit
// size-based switch between exact and sampled modes.
type BetweennessOptions struct {
	// Sampled selects estimation from SampleSize sources instead of all N.
	Sampled bool
	// SampleSize is the number of source nodes when Sampled is true.
	SampleSize int
	// Seed makes the sampled source selection reproducible.
	Seed int64
	// Workers bounds the number of concurrent per-source BFS passes.
	Workers int
}

// DefaultBetweennessOptions returns exact-mode defaults with one worker per
// CPU.
func DefaultBetweennessOptions() BetweennessOptions {
	return BetweennessOptions{
		Workers: runtime.NumCPU(),
	}
}

// BetweennessResult contains raw (unnormalised) betweenness scores.
// Callers may further normalise by (N-1)(N-2)/2 if a probability-like scale
// is desired. Complete is false when the computation was cancelled between
// source iterations; Scores then covers only the sources that finished.
type BetweennessResult struct {
	Scores       map[string]float64
	Complete     bool
	SourcesTotal int
	SourcesDone  int
}

// BetweennessCentrality computes node betweenness with Brandes' algorithm:
// one BFS plus dependency back-propagation per source node. Per-source
// passes are independent and run on a worker pool; partial tallies combine
// through commutative summation, so the reduction order only affects
// floating-point rounding. The undirected double count of each pair is
// halved at the end.
func BetweennessCentrality(ctx context.Context, g *graph.Graph, opts BetweennessOptions) (*BetweennessResult, error) {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)

	result := &BetweennessResult{
		Scores:   make(map[string]float64, n),
		Complete: true,
	}
	for _, id := range nodeIDs {
		result.Scores[id] = 0.0
	}
	if n == 0 {
		return result, nil
	}

	sources := nodeIDs
	if opts.Sampled {
		if opts.SampleSize <= 0 {
			return nil, fmt.Errorf("betweenness: sample size %d must be positive", opts.SampleSize)
		}
		if opts.SampleSize < n {
			rng := rand.New(rand.NewSource(opts.Seed))
			perm := rng.Perm(n)
			sources = make([]string, opts.SampleSize)
			for i := 0; i < opts.SampleSize; i++ {
				sources[i] = nodeIDs[perm[i]]
			}
		}
	}
	result.SourcesTotal = len(sources)

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := parallel.NewWorkerPool(workers)
	if err != nil {
		return nil, fmt.Errorf("betweenness: %w", err)
	}

	var (
		mu   sync.Mutex
		done atomic.Int64
	)

	for _, source := range sources {
		if ctx.Err() != nil {
			break
		}

		src := source
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}

			delta := brandesPass(g, src)

			mu.Lock()
			for id, d := range delta {
				result.Scores[id] += d
			}
			mu.Unlock()
			pools.PutFloat64Map(delta)
			done.Add(1)
		})
	}
	pool.Wait()

	result.SourcesDone = int(done.Load())
	result.Complete = result.SourcesDone == result.SourcesTotal

	// Each undirected pair is counted from both endpoints
	for id := range result.Scores {
		result.Scores[id] /= 2.0
	}

	// Sampled runs estimate the full sum by scaling up to all N sources.
	// A cancelled run scales by the sources that actually finished so the
	// partial result stays an unbiased estimate.
	if opts.Sampled && result.SourcesDone > 0 && result.SourcesDone < n {
		scale := float64(n) / float64(result.SourcesDone)
		for id := range result.Scores {
			result.Scores[id] *= scale
		}
	}

	return result, nil
}

// brandesPass runs one source iteration of Brandes' algorithm: BFS to count
// shortest paths, then dependency accumulation in reverse BFS order.
// Distances are hop counts; edge weights do not affect path length.
func brandesPass(g *graph.Graph, source string) map[string]float64 {
	stack := make([]string, 0)
	predecessors := make(map[string][]string)

	sigma := pools.GetFloat64Map()
	defer pools.PutFloat64Map(sigma)
	distance := pools.GetIntMap()
	defer pools.PutIntMap(distance)

	sigma[source] = 1.0
	distance[source] = 0

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(string)
		if !ok {
			continue
		}
		stack = append(stack, v)

		for w := range g.Neighbors(v) {
			dw, seen := distance[w]
			if !seen {
				distance[w] = distance[v] + 1
				dw = distance[w]
				queue.PushBack(w)
			}
			if dw == distance[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	// Back-propagation in reverse distance order. The delta map is pooled;
	// the caller returns it after merging.
	delta := pools.GetFloat64Map()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, pred := range predecessors[w] {
			delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
		}
	}
	delete(delta, source)
	return delta
}
