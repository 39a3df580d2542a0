package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/radviz/internal/scene"
)

func TestCanvasStartsEmpty(t *testing.T) {
	c := NewCanvas(4, 2)
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if c.Cell(col, row) != 0x2800 {
				t.Errorf("cell (%d,%d) = %#x, want empty braille", col, row, c.Cell(col, row))
			}
		}
	}
}

func TestCanvasSetSubpixels(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Cell(0, 0) != 0x2801 {
		t.Errorf("got %#x, want %#x", c.Cell(0, 0), 0x2801)
	}

	c.Set(1, 3)
	if c.Cell(0, 0) != 0x2801|0x80 {
		t.Errorf("got %#x, want %#x", c.Cell(0, 0), 0x2801|0x80)
	}

	// Second character cell starts at subpixel x=2.
	c.Set(2, 0)
	if c.Cell(1, 0) != 0x2801 {
		t.Errorf("got %#x, want %#x", c.Cell(1, 0), 0x2801)
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(4, 0)
	c.Set(0, 8)

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.Cell(col, row) != 0x2800 {
				t.Errorf("cell (%d,%d) changed after out-of-range set", col, row)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(3, 7)
	c.Clear()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.Cell(col, row) != 0x2800 {
				t.Errorf("cell (%d,%d) not cleared", col, row)
			}
		}
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Cell(0, 0) == 0x2800 {
		t.Error("line start not set")
	}
	if c.Cell(9, 9) == 0x2800 {
		t.Error("line end not set")
	}
}

func TestCanvasFillCircleCoversCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 3)

	if c.Cell(5, 5) == 0x2800 {
		t.Error("circle center not set")
	}
	// Radius 3 around (10,20) cannot reach subpixel row 24 or column 14.
	if c.Cell(5, 6) != 0x2800 {
		t.Error("fill leaked below the circle")
	}
	if c.Cell(7, 5) != 0x2800 {
		t.Error("fill leaked right of the circle")
	}
}

func TestCanvasFillCircleZeroRadius(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillCircle(3, 3, 0)
	if c.Cell(1, 0) == 0x2800 {
		t.Error("zero-radius circle set nothing")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(6, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 6 {
			t.Errorf("line %d has %d runes, want 6", i, got)
		}
	}
}

func TestSurfaceScalesWorldCoordinates(t *testing.T) {
	c := NewCanvas(10, 10)
	s := newCanvasSurface(c, 100, 100)

	// Subpixel space is 20x40, so world (50,50) lands at (10,20).
	s.FilledCircle(scene.Vec2{X: 50, Y: 50}, 0, scene.PaletteClassic.Marker)
	if c.Cell(5, 5) == 0x2800 {
		t.Errorf("world center did not map to canvas center")
	}
}

func TestSurfaceClosedPolylineWraps(t *testing.T) {
	c := NewCanvas(10, 10)
	s := newCanvasSurface(c, 20, 40)

	// A triangle in world space; every vertex cell must be lit.
	pts := []scene.Vec2{{X: 2, Y: 2}, {X: 18, Y: 2}, {X: 10, Y: 35}}
	s.ClosedPolyline(pts, scene.PaletteClassic.Ring)

	for _, p := range pts {
		x, y := s.point(p)
		if c.Cell(x/2, y/4) == 0x2800 {
			t.Errorf("vertex (%v,%v) not drawn", p.X, p.Y)
		}
	}
}
