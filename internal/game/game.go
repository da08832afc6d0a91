package game

import (
	"context"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/sound-orbit/internal/config"
	"github.com/iburimskiy/sound-orbit/internal/engine"
	"github.com/iburimskiy/sound-orbit/internal/render"
	"github.com/iburimskiy/sound-orbit/internal/session"
)

// Game binds the session, engine and renderer to ebiten's loop. Each Update
// is one tick: it advances the engine and paints onto a persistent canvas
// so the fade leaves trails. Draw only copies the canvas and the controls.
type Game struct {
	ctx      context.Context
	session  *session.Session
	state    *engine.State
	renderer *render.Renderer
	log      *slog.Logger

	canvas  *ebiten.Image
	surface *imageSurface
	width   int
	height  int

	buttons []*button
	prevKey map[ebiten.Key]bool

	saveRequested bool
	snapshotDir   string
	lastSaved     string
	lastErr       error
}

func New(ctx context.Context, sess *session.Session, state *engine.State, log *slog.Logger) *Game {
	g := &Game{
		ctx:         ctx,
		session:     sess,
		state:       state,
		renderer:    render.New(),
		log:         log,
		width:       config.WindowWidth,
		height:      config.WindowHeight,
		prevKey:     map[ebiten.Key]bool{},
		snapshotDir: ".",
	}
	g.buttons = newButtons(
		[]string{"Start", "Pause", "Save"},
		[]func(){g.start, g.session.TogglePause, g.requestSave},
	)
	return g
}

func (g *Game) start() {
	if g.session.Start(g.ctx) {
		g.lastErr = nil
	}
}

func (g *Game) requestSave() {
	g.saveRequested = true
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	for _, b := range g.buttons {
		b.update(mouseX, mouseY)
	}

	if justPressed(ebiten.KeyEnter) {
		g.start()
	}
	if justPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if justPressed(ebiten.KeyS) {
		g.requestSave()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if err := g.session.Poll(); err != nil {
		g.lastErr = err
		go showError(err)
	}

	g.ensureCanvas()
	if f, ok := g.session.Frame(); ok {
		tick := g.state.Step(f)
		g.renderer.Draw(g.surface, g.state, tick)
	}

	if g.saveRequested {
		g.saveRequested = false
		path, err := saveSnapshot(g.canvas, g.snapshotDir, time.Now())
		if err != nil {
			g.log.Error("snapshot failed", "error", err)
			g.lastErr = err
		} else {
			g.log.Info("snapshot written", "path", path)
			g.lastSaved = path
		}
	}
	return nil
}

// ensureCanvas (re)creates the persistent canvas at the window size.
func (g *Game) ensureCanvas() {
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.canvas.Fill(color.Black)
	g.surface = &imageSurface{img: g.canvas}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	for _, b := range g.buttons {
		b.draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 8)
}

func (g *Game) status() string {
	var status string
	switch g.session.State() {
	case session.Idle:
		status = "Press Start (Enter) to listen"
	case session.Starting:
		status = "Waiting for audio input..."
	case session.Running:
		status = "Listening - Space to pause, S to save, Esc/Q to quit"
	case session.Paused:
		status = "Paused - Space to resume, S to save"
	}
	if g.lastSaved != "" {
		status += " | Saved " + g.lastSaved
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
