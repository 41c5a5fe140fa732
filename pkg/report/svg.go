// Package report renders search.Result values as human-readable text, JSON
// exports, and top-down SVG floor plans.
package report

import (
	"bytes"
	"fmt"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/mwinters-dev/netherquad/pkg/generator"
	"github.com/mwinters-dev/netherquad/pkg/piece"
	"github.com/mwinters-dev/netherquad/pkg/search"
)

// SVGOptions configures the top-down floor-plan export.
type SVGOptions struct {
	Width, Height int     // Canvas size in pixels
	Scale         float64 // Blocks per pixel
	Title         string
}

// DefaultSVGOptions returns sensible defaults for a single fortress plot.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 1000, Height: 1000, Scale: 4, Title: "Fortress"}
}

// ExportSVG renders a top-down (X/Z) floor plan of a result's pieces. Each
// piece is drawn as a rectangle, color-coded by whether it belongs to a
// 2x2 crossing cluster, is any other crossing, or is an ordinary piece.
func ExportSVG(r *search.Result, opts SVGOptions) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report: result must not be nil")
	}
	if len(r.Pieces) == 0 {
		return nil, fmt.Errorf("report: result has no pieces")
	}
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.Scale <= 0 {
		opts.Scale = 4
	}

	clustered := clusterMembership(r)

	minX, minZ := r.Pieces[0].Box.MinX, r.Pieces[0].Box.MinZ
	for _, p := range r.Pieces {
		if p.Box.MinX < minX {
			minX = p.Box.MinX
		}
		if p.Box.MinZ < minZ {
			minZ = p.Box.MinZ
		}
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 24, opts.Title, "text-anchor:middle;fill:#eeeeee;font-size:18px")
	}

	ordered := append([]*generator.Placed(nil), r.Pieces...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Depth < ordered[j].Depth
	})

	for _, p := range ordered {
		x := int(float64(p.Box.MinX-minX)/opts.Scale) + 20
		y := int(float64(p.Box.MinZ-minZ)/opts.Scale) + 40
		w := int(float64(p.Box.MaxX-p.Box.MinX+1) / opts.Scale)
		h := int(float64(p.Box.MaxZ-p.Box.MinZ+1) / opts.Scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		style := pieceStyle(p, clustered)
		canvas.Rect(x, y, w, h, style)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func pieceStyle(p *generator.Placed, clustered map[*generator.Placed]bool) string {
	switch {
	case clustered[p]:
		return "fill:#ff5555;stroke:#ffaaaa;stroke-width:1"
	case piece.IsCrossing(p.Kind):
		return "fill:#55aaff;stroke:#aaddff;stroke-width:1"
	default:
		return "fill:#668866;stroke:#aaccaa;stroke-width:1"
	}
}

func clusterMembership(r *search.Result) map[*generator.Placed]bool {
	m := make(map[*generator.Placed]bool)
	for _, c := range r.Clusters {
		for _, p := range c.Crossings {
			m[p] = true
		}
	}
	return m
}
