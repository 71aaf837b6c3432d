package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// Document is the JSON description of a scene
type Document struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Camera      CameraDoc  `json:"camera"`
	Light       *LightDoc  `json:"light,omitempty"`
	Shapes      []ShapeDoc `json:"shapes"`
}

// CameraDoc positions the camera; FieldOfView is in degrees
type CameraDoc struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	FieldOfView float64    `json:"fov"`
	From        [3]float64 `json:"from"`
	To          [3]float64 `json:"to"`
	Up          [3]float64 `json:"up"`
}

// LightDoc describes the point light
type LightDoc struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

// ShapeDoc describes one shape; Type is "sphere" or "plane"
type ShapeDoc struct {
	Type      string         `json:"type"`
	Transform []TransformDoc `json:"transform,omitempty"`
	Material  *MaterialDoc   `json:"material,omitempty"`
}

// TransformDoc is one step of a transform list. Steps apply in listed order:
// the first entry transforms the object first.
// Op is translate, scale, rotate-x, rotate-y, rotate-z (degrees) or shear.
type TransformDoc struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// MaterialDoc overrides fields of the default material; omitted fields keep their defaults
type MaterialDoc struct {
	Color      *[3]float64 `json:"color,omitempty"`
	Ambient    *float64    `json:"ambient,omitempty"`
	Diffuse    *float64    `json:"diffuse,omitempty"`
	Specular   *float64    `json:"specular,omitempty"`
	Shininess  *float64    `json:"shininess,omitempty"`
	Reflective *float64    `json:"reflective,omitempty"`
	Pattern    *PatternDoc `json:"pattern,omitempty"`
}

// PatternDoc describes a two-color pattern
type PatternDoc struct {
	Type      string         `json:"type"`
	A         [3]float64     `json:"a"`
	B         [3]float64     `json:"b"`
	Transform []TransformDoc `json:"transform,omitempty"`
}

// DefaultCameraDoc is used for fields a document leaves empty
func DefaultCameraDoc() CameraDoc {
	return CameraDoc{
		Width:       400,
		Height:      225,
		FieldOfView: 60,
		From:        [3]float64{0, 1.5, -5},
		To:          [3]float64{0, 1, 0},
		Up:          [3]float64{0, 1, 0},
	}
}

// LoadDocument reads a JSON scene document from path
func LoadDocument(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	doc, err := ParseDocument(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// ParseDocument decodes a JSON scene document, filling camera defaults
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{Camera: DefaultCameraDoc()}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene document: %w", err)
	}
	return doc, nil
}

// Build converts the document into a world and camera, validating every transform
func (d *Document) Build() (*Scene, error) {
	w := world.New()
	if d.Light != nil {
		w.Light = lights.NewPointLight(toPoint(d.Light.Position), toColor(d.Light.Intensity))
	}

	for i, sd := range d.Shapes {
		shape, err := sd.build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.AddShape(shape)
	}

	camera, err := d.Camera.build()
	if err != nil {
		return nil, err
	}

	return &Scene{Name: d.Name, World: w, Camera: camera}, nil
}

func (c CameraDoc) build() (*renderer.Camera, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("camera: invalid size %dx%d", c.Width, c.Height)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return nil, fmt.Errorf("camera: field of view must be between 0 and 180 degrees, got %g", c.FieldOfView)
	}
	from, to := toPoint(c.From), toPoint(c.To)
	if from.Equal(to) {
		return nil, fmt.Errorf("camera: from and to must differ")
	}
	return newCamera(c.Width, c.Height, degrees(c.FieldOfView), from, to, toVector(c.Up))
}

func (sd ShapeDoc) build() (*geometry.Shape, error) {
	kind, err := geometry.ParseKind(sd.Type)
	if err != nil {
		return nil, err
	}
	shape := geometry.NewShape(kind)

	transform, err := buildTransform(sd.Transform)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}

	if sd.Material != nil {
		m, err := sd.Material.build()
		if err != nil {
			return nil, err
		}
		shape.Material = m
	}
	return shape, nil
}

func (md MaterialDoc) build() (material.Material, error) {
	m := material.DefaultMaterial()
	if md.Color != nil {
		m.Color = toColor(*md.Color)
	}
	setFloat(&m.Ambient, md.Ambient)
	setFloat(&m.Diffuse, md.Diffuse)
	setFloat(&m.Specular, md.Specular)
	setFloat(&m.Shininess, md.Shininess)
	setFloat(&m.Reflective, md.Reflective)

	if md.Pattern != nil {
		pattern, err := md.Pattern.build()
		if err != nil {
			return m, err
		}
		m.Pattern = pattern
	}
	return m, nil
}

func (pd PatternDoc) build() (*material.Pattern, error) {
	kind, err := material.ParsePatternKind(pd.Type)
	if err != nil {
		return nil, err
	}

	var pattern *material.Pattern
	a, b := toColor(pd.A), toColor(pd.B)
	switch kind {
	case material.PatternStripe:
		pattern = material.NewStripePattern(a, b)
	case material.PatternGradient:
		pattern = material.NewGradientPattern(a, b)
	case material.PatternRing:
		pattern = material.NewRingPattern(a, b)
	case material.PatternChecker:
		pattern = material.NewCheckerPattern(a, b)
	default:
		pattern = material.NewTestPattern()
	}

	transform, err := buildTransform(pd.Transform)
	if err != nil {
		return nil, err
	}
	if err := pattern.SetTransform(transform); err != nil {
		return nil, err
	}
	return pattern, nil
}

// buildTransform composes steps so the first listed is applied first
func buildTransform(steps []TransformDoc) (core.Matrix4, error) {
	result := core.Identity
	for _, step := range steps {
		m, err := step.matrix()
		if err != nil {
			return core.Identity, err
		}
		result = m.Multiply(result)
	}
	return result, nil
}

func (t TransformDoc) matrix() (core.Matrix4, error) {
	want := map[string]int{
		"translate": 3,
		"scale":     3,
		"rotate-x":  1,
		"rotate-y":  1,
		"rotate-z":  1,
		"shear":     6,
	}
	n, ok := want[t.Op]
	if !ok {
		return core.Identity, fmt.Errorf("unknown transform %q", t.Op)
	}
	if len(t.Args) != n {
		return core.Identity, fmt.Errorf("transform %q takes %d arguments, got %d", t.Op, n, len(t.Args))
	}

	a := t.Args
	switch t.Op {
	case "translate":
		return core.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return core.Scaling(a[0], a[1], a[2]), nil
	case "rotate-x":
		return core.RotationX(degrees(a[0])), nil
	case "rotate-y":
		return core.RotationY(degrees(a[0])), nil
	case "rotate-z":
		return core.RotationZ(degrees(a[0])), nil
	default:
		return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil && !math.IsNaN(*v) {
		*dst = *v
	}
}

func toPoint(v [3]float64) core.Tuple { return core.Point(v[0], v[1], v[2]) }
func toVector(v [3]float64) core.Tuple { return core.Vector(v[0], v[1], v[2]) }
func toColor(v [3]float64) core.Tuple { return core.Color(v[0], v[1], v[2]) }
