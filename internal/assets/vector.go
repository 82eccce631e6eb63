package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"
	"gopkg.in/yaml.v3"
)

// VectorImage is a list of draw commands on a fixed viewport, rasterised
// once at load time.
type VectorImage struct {
	Size     [2]int        `yaml:"size"`
	Commands []DrawCommand `yaml:"commands"`
}

// DrawCommand is either a polyline/polygon ("path") or a "circle".
type DrawCommand struct {
	Type        string       `yaml:"type"`
	Fill        string       `yaml:"fill"`
	Stroke      string       `yaml:"stroke"`
	StrokeWidth float32      `yaml:"stroke_width"`
	Closed      bool         `yaml:"closed"`
	Points      [][2]float32 `yaml:"points"`
	Center      [2]float32   `yaml:"center"`
	Radius      float32      `yaml:"radius"`
}

const circleSegments = 32

var ErrBadVectorImage = errors.New("invalid vector image")

// ParseVectorImage decodes a YAML vector image description.
func ParseVectorImage(data []byte) (*VectorImage, error) {
	var img VectorImage
	if err := yaml.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadVectorImage, err)
	}
	if img.Size[0] <= 0 || img.Size[1] <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadVectorImage, img.Size[0], img.Size[1])
	}
	for i, cmd := range img.Commands {
		switch cmd.Type {
		case "path":
			if len(cmd.Points) < 2 {
				return nil, fmt.Errorf("%w: command %d: path needs two points", ErrBadVectorImage, i)
			}
		case "circle":
			if cmd.Radius <= 0 {
				return nil, fmt.Errorf("%w: command %d: circle needs a radius", ErrBadVectorImage, i)
			}
		default:
			return nil, fmt.Errorf("%w: command %d: unknown type %q", ErrBadVectorImage, i, cmd.Type)
		}
		for _, hex := range []string{cmd.Fill, cmd.Stroke} {
			if _, err := parseHexColor(hex); err != nil {
				return nil, fmt.Errorf("%w: command %d: %v", ErrBadVectorImage, i, err)
			}
		}
	}
	return &img, nil
}

// Rasterize draws the commands in order onto a transparent RGBA image.
// scale multiplies every coordinate.
func (v *VectorImage) Rasterize(scale float32) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	width := int(math.Ceil(float64(float32(v.Size[0]) * scale)))
	height := int(math.Ceil(float64(float32(v.Size[1]) * scale)))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)

	for _, cmd := range v.Commands {
		points := cmd.Points
		closed := cmd.Closed
		if cmd.Type == "circle" {
			points = circlePoints(cmd.Center, cmd.Radius)
			closed = true
		}
		scaled := make([][2]float32, len(points))
		for i, p := range points {
			scaled[i] = [2]float32{p[0] * scale, p[1] * scale}
		}

		if fill, _ := parseHexColor(cmd.Fill); fill != nil && closed {
			z.Reset(width, height)
			addPolygon(z, scaled)
			z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
		}
		if stroke, _ := parseHexColor(cmd.Stroke); stroke != nil {
			strokeWidth := cmd.StrokeWidth
			if strokeWidth <= 0 {
				strokeWidth = 1
			}
			z.Reset(width, height)
			addStroke(z, scaled, closed, strokeWidth*scale)
			z.Draw(dst, dst.Bounds(), image.NewUniform(stroke), image.Point{})
		}
	}
	return dst
}

func addPolygon(z *vector.Rasterizer, points [][2]float32) {
	z.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

// addStroke adds one quad per segment and a small disc per joint. Quads and
// discs share one winding direction so their overlaps add up instead of
// cancelling out.
func addStroke(z *vector.Rasterizer, points [][2]float32, closed bool, width float32) {
	half := width / 2
	segments := len(points) - 1
	if closed {
		segments = len(points)
	}
	for i := 0; i < segments; i++ {
		a := points[i]
		b := points[(i+1)%len(points)]
		dx, dy := b[0]-a[0], b[1]-a[1]
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		addPolygon(z, [][2]float32{
			{a[0] - nx, a[1] - ny},
			{b[0] - nx, b[1] - ny},
			{b[0] + nx, b[1] + ny},
			{a[0] + nx, a[1] + ny},
		})
	}
	for _, p := range points {
		addPolygon(z, circlePoints(p, half))
	}
}

func circlePoints(center [2]float32, radius float32) [][2]float32 {
	points := make([][2]float32, circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points[i] = [2]float32{
			center[0] + radius*float32(math.Cos(angle)),
			center[1] + radius*float32(math.Sin(angle)),
		}
	}
	return points
}

// parseHexColor accepts "#rrggbb" and "#rrggbbaa". An empty string is no
// color.
func parseHexColor(hex string) (color.Color, error) {
	if hex == "" {
		return nil, nil
	}
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 6 {
		digits += "ff"
	}
	if len(digits) != 8 {
		return nil, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", hex)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(value >> 24), G: uint8(value >> 16), B: uint8(value >> 8), A: uint8(value)}, nil
}
