package apartment

import (
	"tile-configurator/internal/finish"
	"tile-configurator/internal/scene"
)

// Texture repetition across each surface's UV space. Fixed by the layout, not derived from geometry size.
var (
	FloorTiling     = scene.Tiling{U: 20, V: 20}
	WallTiling      = scene.Tiling{U: 5, V: 3}
	FurnitureTiling = scene.Tiling{U: 2, V: 2}
)

// Fixed part colors that do not follow their group's surface.
var (
	silver    = finish.MustParseHex("#C0C0C0")
	black     = finish.MustParseHex("#000000")
	beige     = finish.MustParseHex("#F5F5DC")
	porcelain = finish.MustParseHex("#FFFFFF")
)

const glassOpacity = 0.3

// Palette holds the colors and texture URIs of every authored surface except the floor.
type Palette struct {
	WallColor     finish.Color
	WallTexture   string
	WoodColor     finish.Color
	WoodTexture   string
	FabricColor   finish.Color
	FabricTexture string
	MetalColor    finish.Color
	GlassColor    finish.Color
}

// DefaultPalette returns the authored surfaces. WallColor is the literal tint the walls
// were authored with; override it through config.
func DefaultPalette() Palette {
	return Palette{
		WallColor:     finish.MustParseHex("#fff700"),
		WallTexture:   "https://images.unsplash.com/photo-1604147495798-57beb5d6af73?auto=format&fit=crop&q=80&w=2000&h=2000",
		WoodColor:     finish.MustParseHex("#8B4513"),
		WoodTexture:   "https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&q=80&w=2000&h=2000",
		FabricColor:   finish.MustParseHex("#D2B48C"),
		FabricTexture: "https://images.unsplash.com/photo-1528458909336-e7a0adfed0a5?auto=format&fit=crop&q=80&w=2000&h=2000",
		MetalColor:    finish.MustParseHex("#B8B8B8"),
		GlassColor:    finish.MustParseHex("#E6F3FF"),
	}
}

// surface names a group material; resolved against a Palette when the tree is built.
type surface int

const (
	surfaceWood surface = iota
	surfaceFabric
	surfaceMetal
	surfacePorcelain
)

func (p Palette) material(s surface) scene.Material {
	switch s {
	case surfaceWood:
		return scene.Textured(p.WoodColor, p.WoodTexture, FurnitureTiling)
	case surfaceFabric:
		return scene.Textured(p.FabricColor, p.FabricTexture, FurnitureTiling)
	case surfaceMetal:
		return scene.Flat(p.MetalColor)
	}
	return scene.Flat(porcelain)
}

func (p Palette) wall() scene.Material {
	return scene.Textured(p.WallColor, p.WallTexture, WallTiling)
}

func (p Palette) glass() scene.Material {
	m := scene.Flat(p.GlassColor)
	m.Opacity = glassOpacity
	return m
}

// textures lists the palette's texture URIs.
func (p Palette) textures() []string {
	var out []string
	for _, t := range []string{p.WallTexture, p.WoodTexture, p.FabricTexture} {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
