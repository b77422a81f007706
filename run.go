package trellis

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen each frame. The zero value leaves it black.
	ClearColor Color
	// ShowFPS prints the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug enables debug mode on the interface's scene.
	Debug bool
	// Update, if set, runs once per tick before the interface updates.
	// Returning an error stops the loop.
	Update func(dt float32) error
}

// Run opens a window and drives iface until the window closes or the Update
// hook fails. It blocks.
func Run(iface *Interface, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("trellis: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	iface.Scene().ClearColor = cfg.ClearColor
	if cfg.Debug {
		iface.Scene().SetDebugMode(true)
	}
	if err := ebiten.RunGame(&game{iface: iface, cfg: cfg}); err != nil {
		return fmt.Errorf("trellis: run: %w", err)
	}
	return nil
}

// game adapts an Interface to ebiten.Game.
type game struct {
	iface *Interface
	cfg   RunConfig
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.cfg.Update != nil {
		if err := g.cfg.Update(dt); err != nil {
			return err
		}
	}
	g.iface.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.iface.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
