package blocks

import (
	"fmt"
	"strings"
)

// Material identifies a block type.
type Material string

// Air is the reserved empty material; background pixels map to it.
const Air Material = "AIR"

// colors of the dyed block families.
var dyeColors = []string{
	"WHITE", "ORANGE", "MAGENTA", "LIGHT_BLUE", "YELLOW", "LIME", "PINK", "GRAY",
	"LIGHT_GRAY", "CYAN", "PURPLE", "BLUE", "BROWN", "GREEN", "RED", "BLACK",
}

var dyedFamilies = []string{"WOOL", "CONCRETE", "TERRACOTTA", "STAINED_GLASS"}

var plainBlocks = []Material{
	"STONE", "GRANITE", "POLISHED_GRANITE", "DIORITE", "POLISHED_DIORITE",
	"ANDESITE", "POLISHED_ANDESITE", "COBBLESTONE", "MOSSY_COBBLESTONE",
	"STONE_BRICKS", "MOSSY_STONE_BRICKS", "BRICKS", "SANDSTONE", "RED_SANDSTONE",
	"OAK_PLANKS", "SPRUCE_PLANKS", "BIRCH_PLANKS", "JUNGLE_PLANKS",
	"ACACIA_PLANKS", "DARK_OAK_PLANKS", "GLASS", "OBSIDIAN", "QUARTZ_BLOCK",
	"PRISMARINE", "DARK_PRISMARINE", "PURPUR_BLOCK", "END_STONE_BRICKS",
	"NETHER_BRICKS", "GOLD_BLOCK", "IRON_BLOCK", "DIAMOND_BLOCK",
	"EMERALD_BLOCK", "LAPIS_BLOCK", "REDSTONE_BLOCK", "COAL_BLOCK",
	"GLOWSTONE", "SEA_LANTERN", "SNOW_BLOCK", "CLAY", "TERRACOTTA",
}

// Catalog is an ordered set of materials available for drawing.
type Catalog struct {
	materials []Material
	index     map[string]Material
}

// NewCatalog builds a catalog from materials in order. Duplicates and Air
// are dropped.
func NewCatalog(materials []Material) *Catalog {
	c := &Catalog{index: make(map[string]Material, len(materials))}
	for _, m := range materials {
		key := strings.ToUpper(string(m))
		if key == "" || Material(key) == Air {
			continue
		}
		if _, ok := c.index[key]; ok {
			continue
		}
		c.index[key] = Material(key)
		c.materials = append(c.materials, Material(key))
	}
	return c
}

// DefaultCatalog returns the built-in set of solid, non-interactive blocks.
func DefaultCatalog() *Catalog {
	materials := append([]Material(nil), plainBlocks...)
	for _, family := range dyedFamilies {
		for _, color := range dyeColors {
			materials = append(materials, Material(color+"_"+family))
		}
	}
	return NewCatalog(materials)
}

// Len returns the number of materials.
func (c *Catalog) Len() int {
	return len(c.materials)
}

// Materials returns the materials in catalog order.
func (c *Catalog) Materials() []Material {
	return append([]Material(nil), c.materials...)
}

// Lookup finds a material by name, ignoring case.
func (c *Catalog) Lookup(name string) (Material, error) {
	m, ok := c.index[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Resolve looks up every name, failing on the first unknown one.
func (c *Catalog) Resolve(names []string) ([]Material, error) {
	out := make([]Material, 0, len(names))
	for _, n := range names {
		m, err := c.Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Filter returns the materials whose name contains substr, ignoring case.
func (c *Catalog) Filter(substr string) []Material {
	needle := strings.ToUpper(substr)
	var out []Material
	for _, m := range c.materials {
		if strings.Contains(string(m), needle) {
			out = append(out, m)
		}
	}
	return out
}
