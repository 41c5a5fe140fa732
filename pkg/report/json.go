package report

import (
	"encoding/json"
	"os"

	"github.com/mwinters-dev/netherquad/pkg/search"
)

// pieceJSON and clusterJSON mirror generator.Placed and quad.Cluster with
// exported field names tuned for JSON output; the generator/quad types
// carry pointer slices and unexported helpers unsuited to direct
// marshaling.
type pieceJSON struct {
	Kind  string  `json:"kind"`
	Dir   string  `json:"dir"`
	Depth int32   `json:"depth"`
	Box   boxJSON `json:"box"`
}

type boxJSON struct {
	MinX int32 `json:"minX"`
	MinY int32 `json:"minY"`
	MinZ int32 `json:"minZ"`
	MaxX int32 `json:"maxX"`
	MaxY int32 `json:"maxY"`
	MaxZ int32 `json:"maxZ"`
}

type clusterJSON struct {
	Center [3]int32 `json:"center"`
	Box    boxJSON  `json:"box"`
}

type resultJSON struct {
	ChunkX     int32         `json:"chunkX"`
	ChunkZ     int32         `json:"chunkZ"`
	Pieces     []pieceJSON   `json:"pieces"`
	Clusters   []clusterJSON `json:"clusters"`
	GroupSizes []int         `json:"groupSizes"`
}

func toResultJSON(r *search.Result) resultJSON {
	out := resultJSON{ChunkX: r.ChunkX, ChunkZ: r.ChunkZ}
	for _, p := range r.Pieces {
		out.Pieces = append(out.Pieces, pieceJSON{
			Kind:  p.Kind.String(),
			Dir:   p.Dir.String(),
			Depth: p.Depth,
			Box: boxJSON{
				MinX: p.Box.MinX, MinY: p.Box.MinY, MinZ: p.Box.MinZ,
				MaxX: p.Box.MaxX, MaxY: p.Box.MaxY, MaxZ: p.Box.MaxZ,
			},
		})
	}
	for _, c := range r.Clusters {
		out.Clusters = append(out.Clusters, clusterJSON{
			Center: c.Center,
			Box: boxJSON{
				MinX: c.Box.MinX, MinY: c.Box.MinY, MinZ: c.Box.MinZ,
				MaxX: c.Box.MaxX, MaxY: c.Box.MaxY, MaxZ: c.Box.MaxZ,
			},
		})
	}
	for _, g := range r.Groups {
		out.GroupSizes = append(out.GroupSizes, len(g))
	}
	return out
}

// ExportJSON serializes a result to indented JSON.
func ExportJSON(r *search.Result) ([]byte, error) {
	return json.MarshalIndent(toResultJSON(r), "", "  ")
}

// ExportJSONCompact serializes a result to compact JSON.
func ExportJSONCompact(r *search.Result) ([]byte, error) {
	return json.Marshal(toResultJSON(r))
}

// SaveJSONToFile writes an indented JSON export to filepath.
func SaveJSONToFile(r *search.Result, filepath string) error {
	data, err := ExportJSON(r)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
