package apartment

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/scene"
)

const (
	halfPi = math32.Pi / 2
	pi     = math32.Pi

	footprintWidth = 20
	footprintDepth = 15
	wallHeight     = 6
)

// Zone names. Every zone holds one furniture group.
const (
	ZoneLiving   = "living"
	ZoneKitchen  = "kitchen-dining"
	ZoneBedroom  = "bedroom"
	ZoneBathroom = "bathroom"
)

func v(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

func rotY(a float32) mgl32.Vec3 { return mgl32.Vec3{0, a, 0} }

// wallSpec is a single textured wall plane.
type wallSpec struct {
	name     string
	position mgl32.Vec3
	rotation mgl32.Vec3
	width    float32
}

// partitionSpec is an interior wall made of one or more segments.
type partitionSpec struct {
	name     string
	segments []wallSpec
}

// part is one primitive of a furniture item, offset from the item anchor.
// A nil override means the part uses the item's surface material.
type part struct {
	name     string
	offset   mgl32.Vec3
	geom     scene.Geometry
	override *scene.Material
}

type item struct {
	name     string
	anchor   mgl32.Vec3
	rotation mgl32.Vec3
	surface  surface
	parts    []part
}

type zoneSpec struct {
	name  string
	items []item
}

type windowSpec struct {
	name     string
	position mgl32.Vec3
	rotation mgl32.Vec3
}

func flat(m scene.Material) *scene.Material { return &m }

var exteriorWalls = []wallSpec{
	{"wall-west", v(-10, 3, 0), rotY(halfPi), footprintDepth},
	{"wall-east", v(10, 3, 0), rotY(-halfPi), footprintDepth},
	{"wall-north", v(0, 3, -7.5), rotY(0), footprintWidth},
	{"wall-south", v(0, 3, 7.5), rotY(pi), footprintWidth},
}

var partitions = []partitionSpec{
	{"partition-living-bedroom", []wallSpec{
		{"partition-living-bedroom-0", v(-3, 3, 0), rotY(halfPi), footprintDepth},
	}},
	{"partition-bathroom", []wallSpec{
		{"partition-bathroom-0", v(3, 3, -3), rotY(0), 6},
		{"partition-bathroom-1", v(6, 3, 1.5), rotY(halfPi), 6},
	}},
}

var zones = []zoneSpec{
	{ZoneLiving, []item{
		{"sofa", v(-6, 0.5, -4), rotY(halfPi), surfaceFabric, []part{
			{"seat", v(0, 0, 0), scene.Box(3, 1, 1.5), nil},
			{"back", v(0, 0.6, -0.6), scene.Box(3, 0.8, 0.3), nil},
		}},
		{"tv-stand", v(-8, 0.5, 0), rotY(halfPi), surfaceWood, []part{
			{"cabinet", v(0, 0, 0), scene.Box(2, 0.5, 1), nil},
			{"screen", v(0, 1, 0), scene.Box(1.5, 1, 0.1), flat(scene.Flat(black))},
		}},
		{"coffee-table", v(-6, 0.3, -1), rotY(0), surfaceWood, []part{
			{"top", v(0, 0, 0), scene.Box(1.5, 0.5, 1), nil},
		}},
	}},
	{ZoneKitchen, []item{
		{"counter", v(7, 0.5, -5), rotY(pi), surfaceWood, []part{
			{"cabinet", v(0, 0, 0), scene.Box(4, 1, 1), nil},
			{"countertop", v(0, 0.55, 0), scene.Box(4, 0.1, 1), flat(scene.Flat(silver))},
		}},
		{"refrigerator", v(8.5, 1, -6), rotY(0), surfaceMetal, []part{
			{"body", v(0, 0, 0), scene.Box(1, 2, 1), nil},
		}},
		{"dining-table", v(5, 0.5, -2), rotY(0), surfaceWood, []part{
			{"top", v(0, 0, 0), scene.Box(2, 0.8, 1.5), nil},
			{"stool-0", v(-0.7, -0.2, -0.5), scene.Box(0.4, 0.4, 0.4), nil},
			{"stool-1", v(-0.7, -0.2, 0.5), scene.Box(0.4, 0.4, 0.4), nil},
			{"stool-2", v(0.7, -0.2, -0.5), scene.Box(0.4, 0.4, 0.4), nil},
			{"stool-3", v(0.7, -0.2, 0.5), scene.Box(0.4, 0.4, 0.4), nil},
		}},
	}},
	{ZoneBedroom, []item{
		{"bed", v(-6, 0.5, 5), rotY(halfPi), surfaceWood, []part{
			{"frame", v(0, 0, 0), scene.Box(2, 0.5, 3), nil},
			{"bedding", v(0, 0.3, 0), scene.Box(1.9, 0.2, 2.9), flat(scene.Flat(beige))},
		}},
		{"wardrobe", v(-8.5, 1, 6), rotY(0), surfaceWood, []part{
			{"body", v(0, 0, 0), scene.Box(1, 2, 2), nil},
		}},
		{"nightstand", v(-4.5, 0.3, 6), rotY(0), surfaceWood, []part{
			{"body", v(0, 0, 0), scene.Box(0.6, 0.5, 0.6), nil},
		}},
	}},
	{ZoneBathroom, []item{
		{"toilet", v(8, 0.3, 5), rotY(-halfPi), surfacePorcelain, []part{
			{"bowl", v(0, 0, 0), scene.Box(0.6, 0.8, 0.4), nil},
			{"tank", v(0, 0.5, -0.2), scene.Box(0.6, 0.1, 0.4), nil},
		}},
		{"sink", v(8, 0.7, 3), rotY(-halfPi), surfacePorcelain, []part{
			{"counter", v(0, 0, 0), scene.Box(0.8, 0.1, 0.5), nil},
			{"basin", v(0, -0.2, 0), scene.Box(0.4, 0.3, 0.3), flat(scene.Flat(silver))},
		}},
		{"bathtub", v(5, 0.3, 6), rotY(pi), surfacePorcelain, []part{
			{"tub", v(0, 0, 0), scene.Box(2, 0.6, 1), nil},
		}},
	}},
}

var windows = []windowSpec{
	{"window-west-north", v(-9.9, 3, -3), rotY(halfPi)},
	{"window-west-south", v(-9.9, 3, 3), rotY(halfPi)},
	{"window-east", v(9.9, 3, -3), rotY(-halfPi)},
}

// roomLights are the apartment's own lights; the stage adds its key light on top.
var roomLights = []scene.Light{
	scene.Ambient(0.3),
	scene.Point(0, 5, 0, 0.7),
	scene.Point(-5, 5, -5, 0.5),
	scene.Point(5, 5, 5, 0.5),
}
