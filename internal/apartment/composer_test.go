package apartment

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/finish"
	"tile-configurator/internal/scene"
)

func newComposer(t *testing.T) (*Composer, *finish.Catalog) {
	t.Helper()
	c := finish.Default()
	first, err := c.First()
	if err != nil {
		t.Fatal(err)
	}
	return New(DefaultPalette(), first), c
}

func TestFloorFollowsEveryFinish(t *testing.T) {
	comp, cat := newComposer(t)
	for _, f := range cat.All() {
		comp.Update(f)
		m := comp.Floor().Material
		if m.Color != f.BaseColor {
			t.Errorf("%s: floor color = %s, want %s", f.Name, m.Color, f.BaseColor)
		}
		if m.Texture != f.Texture {
			t.Errorf("%s: floor texture = %q, want %q", f.Name, m.Texture, f.Texture)
		}
		if m.Tiling != FloorTiling {
			t.Errorf("%s: floor tiling = %+v", f.Name, m.Tiling)
		}
		if !m.NeedsUpdate {
			t.Errorf("%s: floor material not flagged for refresh", f.Name)
		}
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	comp, cat := newComposer(t)
	brown, _ := cat.ByID(2)
	comp.Update(brown)
	once := comp.snapshot()
	comp.Update(brown)
	twice := comp.snapshot()
	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same finish twice changed the tree")
	}
}

func TestDeriveFloorMaterialIsPure(t *testing.T) {
	f := finish.Option{ID: 9, Name: "x", BaseColor: finish.RGB(1, 2, 3), Texture: "t.png"}
	a := DeriveFloorMaterial(f)
	b := DeriveFloorMaterial(f)
	if a != b {
		t.Errorf("DeriveFloorMaterial not deterministic: %+v vs %+v", a, b)
	}
	a.Color = finish.White
	if DeriveFloorMaterial(f).Color != f.BaseColor {
		t.Error("mutating a derived material leaked into later results")
	}
}

func TestSceneStructure(t *testing.T) {
	comp, _ := newComposer(t)
	got := Count(comp.Root())
	want := Census{
		Floors:        1,
		ExteriorWalls: 4,
		Partitions:    2,
		Windows:       3,
		Furniture: map[string]int{
			ZoneLiving:   3,
			ZoneKitchen:  3,
			ZoneBedroom:  3,
			ZoneBathroom: 3,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
	if comp.Root().Find(FloorName) != comp.Floor() {
		t.Error("Floor() is not the tree's floor node")
	}
}

func TestFurnitureItemsPerZone(t *testing.T) {
	comp, _ := newComposer(t)
	want := map[string][]string{
		ZoneLiving:   {"sofa", "tv-stand", "coffee-table"},
		ZoneKitchen:  {"counter", "refrigerator", "dining-table"},
		ZoneBedroom:  {"bed", "wardrobe", "nightstand"},
		ZoneBathroom: {"toilet", "sink", "bathtub"},
	}
	for zone, items := range want {
		z := comp.Root().Find(zone)
		if z == nil {
			t.Fatalf("zone %s missing", zone)
		}
		for i, name := range items {
			if z.Children[i].Name != name {
				t.Errorf("%s[%d] = %s, want %s", zone, i, z.Children[i].Name, name)
			}
			if len(z.Children[i].Children) == 0 {
				t.Errorf("%s has no parts", name)
			}
		}
	}
}

func TestTreeShapeStableAcrossSelections(t *testing.T) {
	comp, cat := newComposer(t)
	before := comp.snapshot()
	for _, f := range cat.All() {
		comp.Update(f)
	}
	after := comp.snapshot()
	before.Find(FloorName).Material = scene.Material{}
	after.Find(FloorName).Material = scene.Material{}
	if !reflect.DeepEqual(before, after) {
		t.Error("selections changed something other than the floor material")
	}
}

func TestTilingConstants(t *testing.T) {
	comp, _ := newComposer(t)
	root := comp.Root()
	for _, w := range root.FindAll(scene.RoleExteriorWall) {
		if w.Material.Tiling != (scene.Tiling{U: 5, V: 3}) {
			t.Errorf("%s tiling = %+v, want 5x3", w.Name, w.Material.Tiling)
		}
	}
	if got := root.Find("sofa/seat").Material.Tiling; got != (scene.Tiling{U: 2, V: 2}) {
		t.Errorf("sofa tiling = %+v, want 2x2", got)
	}
	if got := root.Find("bed/frame").Material.Tiling; got != (scene.Tiling{U: 2, V: 2}) {
		t.Errorf("bed tiling = %+v, want 2x2", got)
	}
	if got := comp.Floor().Material.Tiling; got != (scene.Tiling{U: 20, V: 20}) {
		t.Errorf("floor tiling = %+v, want 20x20", got)
	}
}

func TestPartOverrides(t *testing.T) {
	comp, _ := newComposer(t)
	p := DefaultPalette()
	root := comp.Root()
	tests := []struct {
		name    string
		color   string
		texture string
	}{
		{"counter/cabinet", "#8B4513", p.WoodTexture},
		{"counter/countertop", "#C0C0C0", ""},
		{"tv-stand/screen", "#000000", ""},
		{"bed/bedding", "#F5F5DC", ""},
		{"sink/basin", "#C0C0C0", ""},
		{"toilet/bowl", "#FFFFFF", ""},
		{"refrigerator/body", "#B8B8B8", ""},
		{"sofa/back", "#D2B48C", p.FabricTexture},
	}
	for _, tt := range tests {
		n := root.Find(tt.name)
		if n == nil {
			t.Errorf("%s missing", tt.name)
			continue
		}
		if n.Material.Color.Hex() != tt.color || n.Material.Texture != tt.texture {
			t.Errorf("%s material = {%s %q}, want {%s %q}", tt.name, n.Material.Color, n.Material.Texture, tt.color, tt.texture)
		}
	}
	glass := root.Find("window-east/glass")
	if glass == nil || !glass.Material.Transparent() || glass.Material.Opacity != 0.3 {
		t.Errorf("window glass = %+v", glass)
	}
}

func TestWallColorConfigurable(t *testing.T) {
	p := DefaultPalette()
	p.WallColor = finish.MustParseHex("#FAF9F6")
	comp := New(p, finish.Default().At(0))
	for _, w := range comp.Root().FindAll(scene.RoleExteriorWall) {
		if w.Material.Color != p.WallColor {
			t.Errorf("%s color = %s, want %s", w.Name, w.Material.Color, p.WallColor)
		}
	}
	seg := comp.Root().Find("partition-bathroom-1")
	if seg == nil || seg.Material.Color != p.WallColor {
		t.Errorf("partition segment = %+v", seg)
	}
}

func TestPartsAreOffsetFromAnchor(t *testing.T) {
	comp, _ := newComposer(t)
	var world mgl32.Vec3
	comp.Root().Walk(func(n *scene.Node, m mgl32.Mat4) bool {
		if n.Name == "counter/countertop" {
			world = m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		}
		return true
	})
	if world.Sub(mgl32.Vec3{7, 1.05, -5}).Len() > 1e-4 {
		t.Errorf("countertop world position = %v, want (7,1.05,-5)", world)
	}
}

// Initial load shows Classic White; picking Modern Gray repaints only the floor.
func TestSelectModernGrayScenario(t *testing.T) {
	comp, cat := newComposer(t)
	if got := comp.Floor().Material.Color.Hex(); got != "#FFFFFF" {
		t.Fatalf("initial floor = %s, want #FFFFFF", got)
	}
	wallsBefore := comp.Root().Find("wall-north").Material
	sofaBefore := comp.Root().Find("sofa").Clone()

	gray, _ := cat.ByID(3)
	comp.Update(gray)

	if got := comp.Floor().Material.Color.Hex(); got != "#808080" {
		t.Errorf("floor = %s, want #808080", got)
	}
	if comp.Floor().Material.Texture != gray.Texture {
		t.Errorf("floor texture = %q, want %q", comp.Floor().Material.Texture, gray.Texture)
	}
	if comp.Root().Find("wall-north").Material != wallsBefore {
		t.Error("wall material changed")
	}
	if !reflect.DeepEqual(comp.Root().Find("sofa").Clone(), sofaBefore) {
		t.Error("sofa changed")
	}
	if comp.Applied().ID != 3 {
		t.Errorf("Applied() = %d, want 3", comp.Applied().ID)
	}
}

func TestLightsAndTextures(t *testing.T) {
	comp, _ := newComposer(t)
	var ambient, point int
	for _, l := range comp.Lights() {
		switch l.Kind {
		case scene.LightAmbient:
			ambient++
		case scene.LightPoint:
			point++
		}
	}
	if ambient != 1 || point != 3 {
		t.Errorf("lights: %d ambient, %d point; want 1, 3", ambient, point)
	}
	if got := len(comp.Textures()); got != 3 {
		t.Errorf("Textures() = %d, want 3 (wall, wood, fabric)", got)
	}
}
