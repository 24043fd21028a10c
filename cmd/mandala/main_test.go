package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/mandalas/internal/config"
	"github.com/Faultbox/mandalas/internal/logger"
	"github.com/Faultbox/mandalas/pkg/blocks"
	"github.com/Faultbox/mandalas/pkg/mandala"
)

func TestParseCenter(t *testing.T) {
	pos, err := parseCenter("10, -5,300")
	require.NoError(t, err)
	assert.Equal(t, blocks.Pos(10, -5, 300), pos)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		_, err := parseCenter(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildRegion(t *testing.T) {
	r, err := buildRegion("1,2,3", "yz", "", 5)
	require.NoError(t, err)
	assert.Equal(t, blocks.PlaneYZ, r.Plane())
	assert.Equal(t, 5, r.Radius())

	r, err = buildRegion("1,2,3", "yz", "north", 5)
	require.NoError(t, err)
	assert.Equal(t, blocks.PlaneXY, r.Plane())

	_, err = buildRegion("1,2,3", "ab", "", 5)
	assert.Error(t, err)
}

func TestRenderASCII(t *testing.T) {
	grid := mandala.Grid{
		{0, 0, 0},
		{0, 7, 9},
		{0, 9, 0},
	}

	var buf bytes.Buffer
	renderASCII(&buf, grid)

	assert.Equal(t, "\n #@\n @\n", buf.String())
}

func TestPrintCounts(t *testing.T) {
	var buf bytes.Buffer
	printCounts(&buf, map[blocks.Material]int{"DIRT": 2, "STONE": 5, "GLASS": 2})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "STONE")
	assert.Contains(t, lines[1], "DIRT")
	assert.Contains(t, lines[2], "GLASS")
}

func TestDrawIntoWorld(t *testing.T) {
	cfg := config.Default()
	cfg.Mandala.Radius = 4
	cfg.Mandala.Sections = 8
	cfg.Mandala.Elements.Random.Count = 0
	cfg.Mandala.Elements.Fixed = config.FixedElements{
		"PETAL": {Range: []float64{0.1, 0.5}},
	}

	region, err := buildRegion("0,64,0", "xz", "", 4)
	require.NoError(t, err)

	world := blocks.NewWorld()
	require.NoError(t, draw(cfg, 42, region, []blocks.Material{"STONE"}, world))

	assert.Equal(t, 81, world.Writes())
	assert.Positive(t, world.Count())
	assert.Equal(t, map[blocks.Material]int{"STONE": world.Count()}, world.Counts())

	lo, hi, ok := world.Bounds()
	require.True(t, ok)
	assert.GreaterOrEqual(t, lo.X, -4)
	assert.LessOrEqual(t, hi.Z, 4)
	assert.Equal(t, 64, lo.Y)
	assert.Equal(t, 64, hi.Y)
}

func TestDrawWarnsWhenMaterialsRepeat(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	cfg := config.Default()
	region, err := buildRegion("0,64,0", "xz", "", cfg.Mandala.Radius)
	require.NoError(t, err)

	require.NoError(t, draw(cfg, 7, region, []blocks.Material{"STONE"}, blocks.NewWorld()))

	warned := logs.FilterMessage("more colors than materials, materials repeat").All()
	require.Len(t, warned, 1)
	assert.Equal(t, int64(1), warned[0].ContextMap()["materials"])
	assert.Greater(t, warned[0].ContextMap()["colors"], int64(1))
}

func TestDrawRejectsMismatchedRegion(t *testing.T) {
	cfg := config.Default()
	cfg.Mandala.Radius = 4

	region, err := buildRegion("0,64,0", "xz", "", 6)
	require.NoError(t, err)

	world := blocks.NewWorld()
	err = draw(cfg, 1, region, []blocks.Material{"STONE"}, world)
	assert.ErrorIs(t, err, blocks.ErrGridSizeMismatch)
	assert.Zero(t, world.Writes())
}

func TestGenerateFlagsWithoutSave(t *testing.T) {
	var opts generateOptions
	fs := generateFlags(&opts)

	assert.Nil(t, fs.Lookup("save"))
	assert.Error(t, fs.Parse([]string{"-save"}))
}

func TestGenerateFlags(t *testing.T) {
	var opts generateOptions
	fs := generateFlags(&opts)
	require.NoError(t, fs.Parse([]string{"-seed", "42", "-radius", "8", "-ascii"}))

	assert.Equal(t, int64(42), opts.seed)
	assert.Equal(t, 8, opts.config.Radius)
	assert.True(t, opts.ascii)
}

func TestDrawFlagsAcceptSave(t *testing.T) {
	var opts drawOptions
	fs := drawFlags(&opts)
	require.NoError(t, fs.Parse([]string{"-save", "-plane", "yz", "-seed", "7", "STONE", "GLASS"}))

	assert.True(t, opts.config.Save)
	assert.Equal(t, "yz", opts.plane)
	assert.Equal(t, int64(7), opts.seed)
	assert.Equal(t, []string{"STONE", "GLASS"}, fs.Args())
}
