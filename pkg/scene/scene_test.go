package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

func TestNew_Builtins(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 40, 30)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != name {
				t.Errorf("Expected name %q, got %q", name, s.Name)
			}
			if s.Camera.HSize != 40 || s.Camera.VSize != 30 {
				t.Errorf("Expected 40x30 camera, got %dx%d", s.Camera.HSize, s.Camera.VSize)
			}
			if s.World.Light == nil || s.World.ObjectCount() == 0 {
				t.Errorf("Scene should have a light and objects")
			}

			// The center ray must produce a finite color
			c := s.World.ColorAt(s.Camera.RayForPixel(20, 15), world.DefaultMaxBounces)
			for _, v := range []float64{c.X, c.Y, c.Z} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("Non-finite color %v", c)
				}
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("cornell", 10, 10); err == nil || !strings.Contains(err.Error(), "unknown scene") {
		t.Errorf("Expected unknown scene error, got %v", err)
	}
	if _, err := New("default", 0, 10); err == nil {
		t.Errorf("Expected error for zero width")
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing.json"), 0, 0); err == nil {
		t.Errorf("Expected error for a missing document")
	}
}

func TestNewPlanesScene(t *testing.T) {
	s, err := NewPlanesScene(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	// Floor, six walls and three spheres
	if s.World.ObjectCount() != 10 {
		t.Errorf("Expected 10 objects, got %d", s.World.ObjectCount())
	}
}

func TestDefaultScene_UsesDefaultWorld(t *testing.T) {
	s, err := NewDefaultScene(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, obj := range world.DefaultWorld().Objects {
		if !s.World.Contains(obj) {
			t.Errorf("Default scene is missing %+v", obj)
		}
	}
}

const sampleDocument = `{
  "name": "sample",
  "camera": {"width": 11, "height": 11, "fov": 90, "from": [0, 0, -5], "to": [0, 0, 0], "up": [0, 1, 0]},
  "light": {"position": [-10, 10, -10], "intensity": [1, 1, 1]},
  "shapes": [
    {"type": "sphere", "material": {"color": [0.8, 1.0, 0.6], "diffuse": 0.7, "specular": 0.2}},
    {"type": "sphere", "transform": [{"op": "scale", "args": [0.5, 0.5, 0.5]}]},
    {
      "type": "plane",
      "transform": [{"op": "rotate-x", "args": [90]}, {"op": "translate", "args": [0, 0, 10]}],
      "material": {
        "reflective": 0.5,
        "pattern": {"type": "stripe", "a": [1, 1, 1], "b": [0, 0, 0], "transform": [{"op": "scale", "args": [2, 2, 2]}]}
      }
    }
  ]
}`

func TestParseDocument_Build(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	s, err := doc.Build()
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}

	if s.World.ObjectCount() != 3 {
		t.Fatalf("Expected 3 shapes, got %d", s.World.ObjectCount())
	}

	// The first two shapes reproduce the default world
	for _, obj := range world.DefaultWorld().Objects {
		if !s.World.Contains(obj) {
			t.Errorf("Document world is missing %+v", obj)
		}
	}

	plane := s.World.Objects[2]
	if plane.Kind != geometry.KindPlane {
		t.Errorf("Expected plane, got %v", plane.Kind)
	}
	// rotate-x first, then translate
	expected := core.Chain(core.Translation(0, 0, 10), core.RotationX(math.Pi/2))
	if !plane.Transform().Equal(expected) {
		t.Errorf("Expected transform %v, got %v", expected, plane.Transform())
	}
	if plane.Material.Pattern == nil || plane.Material.Pattern.Kind != material.PatternStripe {
		t.Errorf("Expected stripe pattern, got %+v", plane.Material.Pattern)
	}
	if plane.Material.Reflective != 0.5 || plane.Material.Ambient != 0.1 {
		t.Errorf("Unexpected material %+v", plane.Material)
	}

	// The document camera looks at the default world the same way the render test does
	c := s.Camera.Render(s.World)
	got, _ := c.PixelAt(5, 5)
	want := core.Color(0.38066, 0.47583, 0.2855)
	if math.Abs(got.X-want.X) > 1e-4 || math.Abs(got.Y-want.Y) > 1e-4 || math.Abs(got.Z-want.Z) > 1e-4 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseDocument_CameraDefaults(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`{"camera": {"width": 64}, "shapes": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Camera.Width != 64 || doc.Camera.Height != DefaultCameraDoc().Height {
		t.Errorf("Expected width override with default height, got %+v", doc.Camera)
	}
}

func TestDocument_BuildErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown shape", `{"shapes": [{"type": "torus"}]}`},
		{"unknown transform", `{"shapes": [{"type": "sphere", "transform": [{"op": "twist", "args": [1]}]}]}`},
		{"wrong argument count", `{"shapes": [{"type": "sphere", "transform": [{"op": "translate", "args": [1]}]}]}`},
		{"singular shape transform", `{"shapes": [{"type": "sphere", "transform": [{"op": "scale", "args": [0, 1, 1]}]}]}`},
		{"singular pattern transform", `{"shapes": [{"type": "plane", "material": {"pattern": {"type": "ring", "transform": [{"op": "scale", "args": [1, 0, 1]}]}}}]}`},
		{"unknown pattern", `{"shapes": [{"type": "plane", "material": {"pattern": {"type": "plaid"}}}]}`},
		{"bad field of view", `{"camera": {"fov": 180}, "shapes": []}`},
		{"degenerate camera", `{"camera": {"from": [1, 1, 1], "to": [1, 1, 1]}, "shapes": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(strings.NewReader(tt.json))
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}
			if _, err := doc.Build(); err == nil {
				t.Errorf("Expected build error")
			}
		})
	}
}

func TestDocument_SingularTransformIsNotInvertible(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`{"shapes": [{"type": "sphere", "transform": [{"op": "scale", "args": [0, 1, 1]}]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Build(); !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}

func TestParseDocument_RejectsUnknownFields(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader(`{"shapes": [], "lights": []}`)); err == nil {
		t.Errorf("Expected error for unknown field")
	}
}

func TestNew_DocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(path, 20, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Camera.HSize != 20 || s.Camera.VSize != 11 {
		t.Errorf("Expected width override only, got %dx%d", s.Camera.HSize, s.Camera.VSize)
	}
	if s.Name != "sample" {
		t.Errorf("Expected document name, got %q", s.Name)
	}
}

func TestShippedDocuments(t *testing.T) {
	scenes, err := ListDocumentScenes(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) == 0 {
		t.Fatal("Expected at least one scene document in the scenes directory")
	}
	for _, info := range scenes {
		t.Run(info.Name, func(t *testing.T) {
			s, err := New(info.FilePath, 16, 9)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera.HSize != 16 || s.Camera.VSize != 9 {
				t.Errorf("Expected 16x9 camera, got %dx%d", s.Camera.HSize, s.Camera.VSize)
			}
		})
	}
}
