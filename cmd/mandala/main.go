// mandala is a CLI for composing seeded mandalas and drawing them with blocks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mandalas/internal/config"
	"github.com/Faultbox/mandalas/internal/logger"
	"github.com/Faultbox/mandalas/internal/snapshot"
	"github.com/Faultbox/mandalas/pkg/blocks"
	"github.com/Faultbox/mandalas/pkg/mandala"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "draw":
		cmdDraw(args)
	case "materials", "mat":
		cmdMaterials(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mandala - seeded mandala generator

Usage:
  mandala <command> [options]

Commands:
  generate [-seed N] [-radius R] [-sections S] [-out DIR] [-format bmp|png] [-ascii]
                                     Compose a mandala and always save it as
                                     <seed>.<format> in the image directory
  draw -radius R [-plane xy|xz|yz | -face F] [-center x,y,z] [-seed N] MATERIAL...
                                     Compose a mandala and project it onto blocks
  materials [filter]                 List the block materials
  config [-write]                    Print the effective configuration

Every command except materials accepts -config FILE and -debug.
draw and config also accept -save, which turns on save_all_to_bitmap.
Environment variables MANDALA_SECTIONS, MANDALA_RADIUS, MANDALA_RANDOM_COUNT,
MANDALA_SAVE_ALL_TO_BITMAP, MANDALA_IMAGE_DIR, MANDALA_IMAGE_FORMAT,
MANDALA_LOG_LEVEL and MANDALA_LOG_FILE override the config file.

Examples:
  mandala generate -seed 42 -radius 64 -ascii
  mandala draw -radius 4 -plane xz -seed 42 STONE
  mandala draw -radius 32 -face north -center 100,70,-20 WHITE_WOOL RED_WOOL
  mandala materials wool`)
}

// setup loads the configuration and starts logging.
func setup(cf *config.Flags) *config.Config {
	cfg, err := config.Load(cf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// compose builds a mandala from the configuration.
func compose(cfg *config.Config, seed int64) (*mandala.Mandala, error) {
	attrs, err := mandala.NewAttributes(seed, cfg.Mandala.Radius, cfg.Mandala.Sections)
	if err != nil {
		return nil, err
	}

	format, err := snapshot.ParseFormat(cfg.Output.ImageFormat)
	if err != nil {
		return nil, err
	}

	return mandala.New(attrs, cfg.Recipe(),
		mandala.WithLogger(logger.Named("composer")),
		mandala.WithSnapshotter(snapshot.NewWriter(cfg.Output.ImageDir, format)),
	), nil
}

// fail logs err and exits. Use it once setup has started logging.
func fail(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	logger.Sync()
	os.Exit(1)
}

// parseOrExit parses a subcommand's flags; the flag set has already printed
// any error and the usage.
func parseOrExit(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
}

type generateOptions struct {
	config config.Flags
	seed   int64
	ascii  bool
}

// generateFlags has no -save: generate always writes its image.
func generateFlags(opts *generateOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	opts.config.Register(fs)
	fs.Int64Var(&opts.seed, "seed", time.Now().UnixMilli(), "Generation seed (default: current time in ms)")
	fs.BoolVar(&opts.ascii, "ascii", false, "Print an ASCII preview")
	return fs
}

func cmdGenerate(args []string) {
	var opts generateOptions
	parseOrExit(generateFlags(&opts), args)

	cfg := setup(&opts.config)
	defer logger.Sync()

	// The image is written below, once, so its path can be printed.
	cfg.Output.SaveAllToBitmap = false

	m, err := compose(cfg, opts.seed)
	if err != nil {
		fail("composing mandala", err)
	}

	format, _ := snapshot.ParseFormat(cfg.Output.ImageFormat)
	path, err := snapshot.NewWriter(cfg.Output.ImageDir, format).Save(strconv.FormatInt(opts.seed, 10), m.Image())
	if err != nil {
		fail("saving mandala image", err)
	}

	fmt.Printf("Seed:     %d\n", opts.seed)
	fmt.Printf("Radius:   %d\n", cfg.Mandala.Radius)
	fmt.Printf("Sections: %d\n", cfg.Mandala.Sections)
	fmt.Printf("Elements: %d\n", len(m.Elements()))
	fmt.Printf("Image:    %s\n", path)

	if opts.ascii {
		fmt.Println()
		renderASCII(os.Stdout, m.Grid())
	}
}

type drawOptions struct {
	config config.Flags
	seed   int64
	plane  string
	face   string
	center string
}

func drawFlags(opts *drawOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	opts.config.Register(fs)
	opts.config.RegisterSave(fs)
	fs.Int64Var(&opts.seed, "seed", time.Now().UnixMilli(), "Generation seed (default: current time in ms)")
	fs.StringVar(&opts.plane, "plane", "xz", "Drawing plane: xy, xz or yz")
	fs.StringVar(&opts.face, "face", "", "Clicked block face; overrides -plane")
	fs.StringVar(&opts.center, "center", "0,64,0", "Center block as x,y,z")
	return fs
}

func cmdDraw(args []string) {
	var opts drawOptions
	fs := drawFlags(&opts)
	parseOrExit(fs, args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mandala draw -radius R [-plane xy|xz|yz] [-center x,y,z] [-seed N] MATERIAL...")
		os.Exit(1)
	}

	cfg := setup(&opts.config)
	defer logger.Sync()

	materials, err := blocks.DefaultCatalog().Resolve(fs.Args())
	if err != nil {
		fail("resolving materials (see 'mandala materials')", err)
	}

	region, err := buildRegion(opts.center, opts.plane, opts.face, cfg.Mandala.Radius)
	if err != nil {
		fail("selecting region", err)
	}

	world := blocks.NewWorld()
	if err := draw(cfg, opts.seed, region, materials, world); err != nil {
		fail("drawing mandala", err)
	}

	fmt.Printf("Seed:   %d\n", opts.seed)
	fmt.Printf("Region: %s\n", region)
	fmt.Printf("Writes: %d\n", world.Writes())
	fmt.Printf("Blocks: %d\n", world.Count())
	if lo, hi, ok := world.Bounds(); ok {
		fmt.Printf("Bounds: %s .. %s\n", lo, hi)
	}
	printCounts(os.Stdout, world.Counts())
}

// draw composes a mandala and projects it into w.
func draw(cfg *config.Config, seed int64, region *blocks.Region, materials []blocks.Material, w blocks.SurfaceWriter) error {
	m, err := compose(cfg, seed)
	if err != nil {
		return err
	}

	mapper, err := blocks.NewMapper(m.TakeGrid(), materials, blocks.WithLogger(logger.Named("mapper")))
	if err != nil {
		return err
	}

	// The background takes no material.
	if colors := len(mapper.Distinct()) - 1; colors > len(materials) {
		logger.Warn("more colors than materials, materials repeat",
			zap.Int("colors", colors),
			zap.Int("materials", len(materials)))
	}

	return mapper.Project(region, w)
}

func buildRegion(center, plane, face string, radius int) (*blocks.Region, error) {
	pos, err := parseCenter(center)
	if err != nil {
		return nil, err
	}

	region := &blocks.Region{}
	if face != "" {
		f, err := blocks.ParseFace(face)
		if err != nil {
			return nil, err
		}
		region.SetCenter(pos, f)
	} else {
		p, err := blocks.ParsePlane(plane)
		if err != nil {
			return nil, err
		}
		region.SetCenterOnPlane(pos, p)
	}
	region.SetRadius(radius)

	return region, nil
}

// parseCenter parses "x,y,z".
func parseCenter(s string) (blocks.BlockPos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return blocks.BlockPos{}, fmt.Errorf("center %q: expected x,y,z", s)
	}

	var xyz [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return blocks.BlockPos{}, fmt.Errorf("center %q: %w", s, err)
		}
		xyz[i] = v
	}
	return blocks.Pos(xyz[0], xyz[1], xyz[2]), nil
}

func printCounts(w io.Writer, counts map[blocks.Material]int) {
	type materialStat struct {
		material blocks.Material
		count    int
	}
	var stats []materialStat
	for m, c := range counts {
		stats = append(stats, materialStat{m, c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].material < stats[j].material
	})

	for _, s := range stats {
		fmt.Fprintf(w, "  %-24s %d\n", s.material, s.count)
	}
}

// asciiShades are assigned to non-background colors in first-seen order.
const asciiShades = "#@%*+=o:-."

// renderASCII prints one character per pixel, leaving the background blank.
func renderASCII(w io.Writer, grid mandala.Grid) {
	if len(grid) == 0 {
		return
	}

	background := grid[0][0]
	shades := make(map[uint32]byte)
	line := make([]byte, 0, len(grid[0]))

	for _, row := range grid {
		line = line[:0]
		for _, v := range row {
			if v == background {
				line = append(line, ' ')
				continue
			}
			c, ok := shades[v]
			if !ok {
				c = asciiShades[len(shades)%len(asciiShades)]
				shades[v] = c
			}
			line = append(line, c)
		}
		fmt.Fprintln(w, strings.TrimRight(string(line), " "))
	}
}

func cmdMaterials(args []string) {
	catalog := blocks.DefaultCatalog()

	materials := catalog.Materials()
	if len(args) > 0 {
		materials = catalog.Filter(args[0])
	}

	for _, m := range materials {
		fmt.Println(m)
	}
	fmt.Printf("\n%d of %d materials\n", len(materials), catalog.Len())
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	var cf config.Flags
	cf.Register(fs)
	cf.RegisterSave(fs)
	write := fs.Bool("write", false, "Save the effective configuration to "+config.ConfigDir())
	fs.Parse(args)

	cfg := setup(&cf)
	defer logger.Sync()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fail("encoding configuration", err)
	}
	fmt.Print(string(data))

	if *write {
		if err := cfg.Save(); err != nil {
			fail("saving configuration", err)
		}
		logger.Info("configuration saved", zap.String("dir", config.ConfigDir()))
	}
}
