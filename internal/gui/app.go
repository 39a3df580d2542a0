// Package gui runs the raylib frontend: the point cloud and its contour
// envelope animated at a fixed target FPS, with keyboard control over
// pause, palette, and sonification.
package gui

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/radviz/internal/anim"
	"github.com/san-kum/radviz/internal/audio"
	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/config"
	"github.com/san-kum/radviz/internal/dataset"
	"github.com/san-kum/radviz/internal/envelope"
	"github.com/san-kum/radviz/internal/scene"
)

// frameClock accumulates rendered time. It stops while the app is paused,
// so the driver sees no elapsed time and the scene freezes in place.
type frameClock struct {
	t float64
}

func (c *frameClock) Now() float64 { return c.t }

type App struct {
	cfg      config.Config
	clock    *frameClock
	driver   *anim.Driver
	computer *envelope.Computer
	rings    *scene.RingRenderer
	points   *scene.PointRenderer
	surface  *raylibSurface

	palIdx     int
	font       rl.Font
	customFont bool
	ringTex    rl.RenderTexture2D
	synth      *audio.Synth

	frame      anim.Frame
	paused     bool
	ringsDirty bool
	quit       bool
}

func initWindow(cfg config.Config) {
	if cfg.Smooth {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

var fontPaths = []string{
	"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
}

// loadFont returns the first system font that exists, loaded at the title
// size with bilinear filtering, or raylib's built-in font.
func loadFont() (rl.Font, bool) {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, 64, nil, 0)
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		return font, true
	}
	return rl.GetFontDefault(), false
}

func paletteIndex(name string) int {
	for i, p := range scene.Palettes {
		if p.Name == name {
			return i
		}
	}
	return 0
}

// NewApp wires the animation driver and renderers for the given config
// and series. The window must be open: fonts and render textures need a
// live GL context.
func NewApp(cfg config.Config, series dataset.Series) *App {
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height)/2 + cfg.CenterYOffset

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := cloud.NewGenerator(cx, cy, cfg.StdX, cfg.StdY, cfg.Points, rand.New(rand.NewSource(seed)))

	clock := &frameClock{}
	driver := anim.NewDriver(series, gen, clock, anim.Config{
		SwitchInterval:     cfg.SwitchInterval,
		TransitionDuration: cfg.TransitionDuration,
	})

	palIdx := paletteIndex(cfg.Theme)
	pal := scene.Palettes[palIdx]

	font, custom := loadFont()

	app := &App{
		cfg:        cfg,
		clock:      clock,
		driver:     driver,
		computer:   envelope.NewComputer(cx, cy, cfg.Bins),
		rings:      scene.NewRingRenderer(cx, cy, cfg.Layers, pal),
		points:     scene.NewPointRenderer(pal),
		surface:    &raylibSurface{smooth: cfg.Smooth},
		palIdx:     palIdx,
		font:       font,
		customFont: custom,
		ringTex:    rl.LoadRenderTexture(int32(cfg.Width), int32(cfg.Height)),
		synth:      audio.NewSynth(),
		ringsDirty: true,
	}
	return app
}

// Run opens the window and blocks in the update-draw loop until the user
// quits. Audio failures are reported and the scene runs silent.
func Run(cfg config.Config, series dataset.Series) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, series)
	defer app.close()

	if cfg.Sonify {
		if err := app.synth.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		}
	}

	for !rl.WindowShouldClose() && !app.quit {
		app.Update()
		app.Draw()
	}
}

func (a *App) close() {
	a.synth.Stop()
	rl.UnloadRenderTexture(a.ringTex)
	if a.customFont {
		rl.UnloadFont(a.font)
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.clock.t = 0
		a.driver.Reset()
		a.ringsDirty = true
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.palIdx = (a.palIdx + 1) % len(scene.Palettes)
		pal := scene.Palettes[a.palIdx]
		a.rings.SetPalette(pal)
		a.points.SetPalette(pal)
		a.ringsDirty = true
	}
	if rl.IsKeyPressed(rl.KeyS) {
		if a.synth.Active() {
			a.synth.Stop()
		} else if err := a.synth.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		}
	}

	if !a.paused {
		a.clock.t += float64(rl.GetFrameTime())
	}

	a.frame = a.driver.Advance()

	if a.synth.Active() {
		a.synth.SetIntensity(a.frame.Norm)
	}
}

func (a *App) Draw() {
	pal := scene.Palettes[a.palIdx]

	// The envelope pass renders into its own texture so a paused scene
	// skips the per-layer work entirely.
	if a.ringsDirty || !a.paused {
		envA := a.computer.Compute(a.frame.Prev)
		envB := a.computer.Compute(a.frame.Target)

		rl.BeginTextureMode(a.ringTex)
		rl.ClearBackground(rl.Blank)
		a.rings.Render(a.surface, envA, envB, a.frame.Ratio, a.frame.Time)
		rl.EndTextureMode()
		a.ringsDirty = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(pal.Background)

	// Render textures are flipped on the Y axis.
	src := rl.NewRectangle(0, 0, float32(a.ringTex.Texture.Width), -float32(a.ringTex.Texture.Height))
	rl.DrawTextureRec(a.ringTex.Texture, src, rl.NewVector2(0, 0), rl.White)

	a.points.Render(a.surface, a.frame.Prev, a.frame.Target, a.frame.Time, a.frame.Ratio)

	a.drawHUD(pal)
	rl.EndDrawing()
}

func (a *App) drawHUD(pal scene.Palette) {
	a.drawText(a.cfg.Title, 60, 60, 64, pal.Title)
	a.drawText(a.cfg.Subtitle, 60, 120, 36, pal.Subtitle)
	a.drawText(a.frame.Readout(), 60, 180, 36, pal.Readout)

	if a.paused {
		a.drawText("PAUSED", a.cfg.Width-160, 30, 20, pal.Readout)
	}
	if a.synth.Active() {
		a.drawText("SOUND ON", a.cfg.Width-160, 60, 14, pal.Subtitle)
	}

	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, a.cfg.Height-40, 14, pal.Readout)
	a.drawText("[SPACE] PAUSE  [R] RESET  [T] THEME  [S] SOUND  [Q] QUIT",
		a.cfg.Width-560, a.cfg.Height-40, 14, pal.Readout)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
