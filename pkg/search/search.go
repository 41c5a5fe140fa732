package search

import (
	"context"
	"sort"
	"sync"

	"github.com/mwinters-dev/netherquad/pkg/generator"
	"github.com/mwinters-dev/netherquad/pkg/locator"
	"github.com/mwinters-dev/netherquad/pkg/piece"
	"github.com/mwinters-dev/netherquad/pkg/quad"
)

// Result is one analyzed fortress. FindQuadFortresses returns only results
// with at least one 2x2 crossing cluster; AnalyzeFortress returns one
// whether or not it has any.
type Result struct {
	ChunkX, ChunkZ int32
	Pieces         []*generator.Placed
	Clusters       []quad.Cluster
	Groups         [][]*generator.Placed
}

// FindQuadFortresses scans the chunk window described by cfg, generates
// every fortress candidate it finds, and returns the ones containing at
// least one 2x2 crossing cluster. Ordering of the returned results is
// deterministic (sorted by chunk coordinates) regardless of worker count.
func FindQuadFortresses(ctx context.Context, cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	candidates := locator.FortressesInWindow(cfg.Seed, cfg.CenterX, cfg.CenterZ, cfg.RadiusChunks)
	if cfg.Workers <= 1 {
		return scanSequential(ctx, cfg.Seed, candidates), nil
	}
	return scanConcurrent(ctx, cfg.Seed, candidates, cfg.Workers), nil
}

func scanSequential(ctx context.Context, seed int64, candidates [][2]int32) []Result {
	var out []Result
	for _, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		if r, ok := analyzeChunk(seed, c[0], c[1]); ok {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ChunkX != out[j].ChunkX {
			return out[i].ChunkX < out[j].ChunkX
		}
		return out[i].ChunkZ < out[j].ChunkZ
	})
	return out
}

// scanConcurrent fans candidate chunks out across workers goroutines. Each
// worker owns a disjoint slice of the candidate list, so no two goroutines
// ever touch the same generator.Generate call; results are collected
// through a buffered channel and sorted before returning so the output is
// independent of goroutine scheduling order.
func scanConcurrent(ctx context.Context, seed int64, candidates [][2]int32, workers int) []Result {
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		return scanSequential(ctx, seed, candidates)
	}

	resultsCh := make(chan Result, len(candidates))
	var wg sync.WaitGroup

	chunkSize := (len(candidates) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(candidates) {
			break
		}
		end := start + chunkSize
		if end > len(candidates) {
			end = len(candidates)
		}

		wg.Add(1)
		go func(slice [][2]int32) {
			defer wg.Done()
			for _, c := range slice {
				if ctx.Err() != nil {
					return
				}
				if r, ok := analyzeChunk(seed, c[0], c[1]); ok {
					resultsCh <- r
				}
			}
		}(candidates[start:end])
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var out []Result
	for r := range resultsCh {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ChunkX != out[j].ChunkX {
			return out[i].ChunkX < out[j].ChunkX
		}
		return out[i].ChunkZ < out[j].ChunkZ
	})
	return out
}

func analyzeChunk(seed int64, chunkX, chunkZ int32) (Result, bool) {
	pieces := generator.Generate(seed, chunkX, chunkZ)

	var crossings []*generator.Placed
	for _, p := range pieces {
		if piece.IsCrossing(p.Kind) {
			crossings = append(crossings, p)
		}
	}

	clusters := quad.FindClusters(crossings)
	if len(clusters) == 0 {
		return Result{}, false
	}

	return Result{
		ChunkX:   chunkX,
		ChunkZ:   chunkZ,
		Pieces:   pieces,
		Clusters: clusters,
		Groups:   quad.ConnectedGroups(crossings),
	}, true
}

// AnalyzeFortress runs the full pipeline for a single known chunk,
// regardless of whether it contains a quad cluster. Useful for inspecting
// one fortress in detail rather than scanning a window for quads.
func AnalyzeFortress(seed int64, chunkX, chunkZ int32) Result {
	pieces := generator.Generate(seed, chunkX, chunkZ)

	var crossings []*generator.Placed
	for _, p := range pieces {
		if piece.IsCrossing(p.Kind) {
			crossings = append(crossings, p)
		}
	}

	return Result{
		ChunkX:   chunkX,
		ChunkZ:   chunkZ,
		Pieces:   pieces,
		Clusters: quad.FindClusters(crossings),
		Groups:   quad.ConnectedGroups(crossings),
	}
}
