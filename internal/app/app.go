//go:build ebiten

package app

import (
	"log"
	"time"

	"neon-ca/internal/core"
	"neon-ca/internal/eca"
	"neon-ca/internal/render"
	"neon-ca/internal/ui"
	"neon-ca/internal/worker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type stepResult struct {
	frame core.Frame
	err   error
}

// Game adapts the worker-hosted automaton to the ebiten.Game interface. The
// render loop never blocks on the worker: each due tick issues one step
// batch, and Draw keeps blitting the last resolved frame until the next one
// arrives.
type Game struct {
	mgr     *worker.Manager
	painter *render.GridPainter
	overlay *ui.Overlay
	timer   *core.FixedStep
	cfg     *Config

	palette  render.Palette
	frame    core.Frame
	results  chan stepResult
	inFlight bool
	rule     int
	speed    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided, already initialized manager.
func New(mgr *worker.Manager, cfg *Config) *Game {
	g := &Game{
		mgr:     mgr,
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		overlay: ui.NewOverlay(),
		timer:   core.NewFixedStep(cfg.SPS),
		cfg:     cfg,
		palette: render.ByName(cfg.Palette),
		results: make(chan stepResult, 4),
		rule:    int(eca.ClampRule(cfg.Rule)),
		speed:   cfg.Speed,
	}
	if g.speed < 1 {
		g.speed = 1
	}
	g.requestFrame(func() (core.Frame, error) { return mgr.Snapshot() })
	return g
}

// requestFrame runs one worker call off the render goroutine and feeds its
// result back into Update.
func (g *Game) requestFrame(call func() (core.Frame, error)) {
	g.inFlight = true
	go func() {
		frame, err := call()
		g.results <- stepResult{frame: frame, err: err}
	}()
}

// Update handles input, drains resolved frames and issues the next step
// batch when one is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.palette = render.Next(g.palette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestFrame(g.mgr.Reset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := eca.RandomSeed(g.cfg.Density, time.Now().UnixNano())
		g.requestFrame(func() (core.Frame, error) { return g.mgr.Seed(seed) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.changeRule(g.rule - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.changeRule(g.rule + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.speed++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.speed > 1 {
		g.speed--
	}

	g.overlay.Update()

	for done := false; !done; {
		select {
		case res := <-g.results:
			g.inFlight = false
			if res.err != nil {
				return res.err
			}
			g.frame = res.frame
		default:
			done = true
		}
	}

	if ((!g.paused) || g.tickOnce) && g.timer.ShouldStep() && !g.inFlight {
		steps := g.speed
		g.requestFrame(func() (core.Frame, error) { return g.mgr.Step(steps) })
		g.tickOnce = false
	}
	return nil
}

// changeRule wraps the rule around the 0-255 ring and pushes it to the
// worker. The local value updates immediately so the overlay stays snappy.
func (g *Game) changeRule(rule int) {
	if rule < 0 {
		rule = 255
	}
	if rule > 255 {
		rule = 0
	}
	g.rule = rule
	go func() {
		if _, err := g.mgr.SetRule(rule); err != nil {
			log.Printf("app: set rule %d: %v", rule, err)
		}
	}()
}

// Draw renders the last resolved frame and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame.Cells, g.palette, g.cfg.Scale)
	g.overlay.Draw(screen, ui.Status{
		Rule:       g.rule,
		Generation: g.frame.Generation,
		SPS:        g.timer.SPS(),
		Speed:      g.speed,
		Palette:    g.palette.Name,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}
