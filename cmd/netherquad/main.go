package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mwinters-dev/netherquad/pkg/locator"
	"github.com/mwinters-dev/netherquad/pkg/report"
	"github.com/mwinters-dev/netherquad/pkg/search"
)

const version = "1.0.0"

var (
	configPath  = flag.String("config", "", "Path to YAML configuration file")
	seedFlag    = flag.Int64("seed", 0, "World seed to search (overrides config seed)")
	centerXFlag = flag.Int("center-x", 0, "Block X coordinate the scan window is centered on")
	centerZFlag = flag.Int("center-z", 0, "Block Z coordinate the scan window is centered on")
	rangeFlag   = flag.Int("range", 5000, "Search radius in blocks around the center")
	workersFlag = flag.Int("workers", 1, "Number of goroutines to scan with concurrently")
	analyzeFlag = flag.String("analyze", "", "Analyze a single chunk \"x,z\" instead of scanning for quads")
	outputDir   = flag.String("output", ".", "Output directory for report files")
	formatFlag  = flag.String("format", "text", "Output format: text, json, svg, or all")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionFlag = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("netherquad version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{"text": true, "json": true, "svg": true, "all": true}
	if !validFormats[*formatFlag] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: text, json, svg, all\n", *formatFlag)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *analyzeFlag != "" {
		cx, cz, err := parseChunkCoords(*analyzeFlag)
		if err != nil {
			return fmt.Errorf("parsing -analyze: %w", err)
		}
		return runAnalyze(int32(cx), int32(cz))
	}

	cfg, err := loadOrBuildConfig()
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Scanning seed=%d center=(%d,%d) range=%d workers=%d\n",
			cfg.Seed, cfg.CenterX, cfg.CenterZ, cfg.RadiusChunks, cfg.Workers)
	}

	start := time.Now()
	results, err := search.FindQuadFortresses(ctx, cfg)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Found %d quad fortress(es) in %v\n", len(results), elapsed)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, r := range results {
		baseName := fmt.Sprintf("quad_%d_%d_%d", cfg.Seed, r.ChunkX, r.ChunkZ)
		if err := writeReports(&r, baseName); err != nil {
			return err
		}
	}

	return nil
}

func runAnalyze(chunkX, chunkZ int32) error {
	seed := *seedFlag
	if *verbose {
		fmt.Printf("Analyzing chunk (%d,%d) for seed=%d\n", chunkX, chunkZ, seed)
	}

	start := time.Now()
	r := search.AnalyzeFortress(seed, chunkX, chunkZ)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
	}

	fmt.Println(report.RenderText(&r))

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	baseName := fmt.Sprintf("fortress_%d_%d_%d", seed, chunkX, chunkZ)
	return writeReports(&r, baseName)
}

func writeReports(r *search.Result, baseName string) error {
	if *formatFlag == "text" || *formatFlag == "all" {
		filename := filepath.Join(*outputDir, baseName+".txt")
		if err := os.WriteFile(filename, []byte(report.RenderText(r)), 0644); err != nil {
			return fmt.Errorf("writing text report: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", filename)
		}
	}

	if *formatFlag == "json" || *formatFlag == "all" {
		filename := filepath.Join(*outputDir, baseName+".json")
		if err := report.SaveJSONToFile(r, filename); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", filename)
		}
	}

	if *formatFlag == "svg" || *formatFlag == "all" {
		filename := filepath.Join(*outputDir, baseName+".svg")
		opts := report.DefaultSVGOptions()
		opts.Title = fmt.Sprintf("Fortress (%d,%d)", r.ChunkX, r.ChunkZ)
		data, err := report.ExportSVG(r, opts)
		if err != nil {
			return fmt.Errorf("rendering SVG report: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("writing SVG report: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", filename)
		}
	}

	return nil
}

func loadOrBuildConfig() (*search.Config, error) {
	if *configPath != "" {
		cfg, err := search.LoadConfig(*configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		flag.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				cfg.Seed = *seedFlag
			}
		})
		return cfg, nil
	}

	// Flags are in block coordinates; the search window works in chunks.
	centerChunkX, centerChunkZ := locator.BlockToChunk(int32(*centerXFlag), int32(*centerZFlag))
	cfg := &search.Config{
		Seed:         *seedFlag,
		CenterX:      centerChunkX,
		CenterZ:      centerChunkZ,
		RadiusChunks: int32(*rangeFlag >> 4),
		Workers:      *workersFlag,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func parseChunkCoords(s string) (int, int, error) {
	var x, z int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &z); err != nil {
		return 0, 0, fmt.Errorf("expected \"x,z\", got %q", s)
	}
	return x, z, nil
}

func printHelp() {
	fmt.Printf("netherquad version %s\n\n", version)
	fmt.Println("Searches a Minecraft world seed for Nether Fortress generations")
	fmt.Println("whose piece layout contains a 2x2 crossing cluster, and renders")
	fmt.Println("reports for the fortresses it finds.")
	fmt.Println("\nUsage:")
	fmt.Println("  netherquad -seed <n> [options]")
	fmt.Println("  netherquad -config <config.yaml> [options]")
	fmt.Println("  netherquad -seed <n> -analyze <x,z> [options]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("  -seed int")
	fmt.Println("        World seed to search (overrides config seed)")
	fmt.Println("  -center-x int, -center-z int")
	fmt.Println("        Block coordinates the scan window is centered on (default 0,0)")
	fmt.Println("  -range int")
	fmt.Println("        Search radius in blocks around the center (default 5000)")
	fmt.Println("  -workers int")
	fmt.Println("        Number of goroutines to scan with concurrently (default 1)")
	fmt.Println("  -analyze string")
	fmt.Println("        Analyze a single chunk \"x,z\" instead of scanning for quads")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for report files (default \".\")")
	fmt.Println("  -format string")
	fmt.Println("        Output format: text, json, svg, or all (default \"text\")")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Scan 5000 blocks around the origin for quad fortresses")
	fmt.Println("  netherquad -seed 12345 -range 5000 -format all -output ./out")
	fmt.Println("\n  # Inspect a single known fortress chunk")
	fmt.Println("  netherquad -seed 12345 -analyze 0,0 -format svg")
}
