package scene

import "image/color"

// Palette is a named color set for the scene. Classic reproduces the
// original look: white canvas, pink topography, pale cyan stems.
type Palette struct {
	Name       string
	Background color.RGBA
	Ring       color.RGBA
	Connector  color.RGBA
	Marker     color.RGBA
	Title      color.RGBA
	Subtitle   color.RGBA
	Readout    color.RGBA
}

var (
	PaletteClassic = Palette{
		Name:       "classic",
		Background: color.RGBA{255, 255, 255, 255},
		Ring:       color.RGBA{255, 80, 160, 255},
		Connector:  color.RGBA{180, 230, 255, 255},
		Marker:     color.RGBA{255, 80, 160, 255},
		Title:      color.RGBA{240, 80, 150, 255},
		Subtitle:   color.RGBA{80, 120, 220, 255},
		Readout:    color.RGBA{50, 50, 60, 255},
	}

	PaletteMidnight = Palette{
		Name:       "midnight",
		Background: color.RGBA{12, 14, 26, 255},
		Ring:       color.RGBA{90, 200, 250, 255},
		Connector:  color.RGBA{255, 210, 120, 255},
		Marker:     color.RGBA{255, 160, 90, 255},
		Title:      color.RGBA{120, 210, 255, 255},
		Subtitle:   color.RGBA{200, 160, 255, 255},
		Readout:    color.RGBA{220, 220, 230, 255},
	}

	PaletteEmber = Palette{
		Name:       "ember",
		Background: color.RGBA{24, 10, 8, 255},
		Ring:       color.RGBA{255, 120, 50, 255},
		Connector:  color.RGBA{255, 220, 160, 255},
		Marker:     color.RGBA{255, 170, 60, 255},
		Title:      color.RGBA{255, 140, 70, 255},
		Subtitle:   color.RGBA{230, 90, 110, 255},
		Readout:    color.RGBA{240, 230, 220, 255},
	}

	PaletteMono = Palette{
		Name:       "mono",
		Background: color.RGBA{250, 250, 250, 255},
		Ring:       color.RGBA{40, 40, 40, 255},
		Connector:  color.RGBA{150, 150, 150, 255},
		Marker:     color.RGBA{20, 20, 20, 255},
		Title:      color.RGBA{20, 20, 20, 255},
		Subtitle:   color.RGBA{110, 110, 110, 255},
		Readout:    color.RGBA{60, 60, 60, 255},
	}
)

// Palettes lists the built-in palettes in cycle order.
var Palettes = []Palette{PaletteClassic, PaletteMidnight, PaletteEmber, PaletteMono}

// PaletteByName returns the named palette, falling back to classic.
func PaletteByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return PaletteClassic
}

// PaletteNames returns the built-in palette names in cycle order.
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
