package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Config carries process-level options resolved at bootstrap.
type Config struct {
	Seed  uint64
	Name  string
	Bots  int
	Debug bool
}

// Game is the frame driver: one Update is one simulation tick while a
// session is running, one Draw rasterizes the latest state. Outside
// gameplay, Update does no simulation work at all.
type Game struct {
	cfg     Config
	session *GameSession
	world   *World
	hud     *HUD
	input   *Input

	viewW, viewH int
}

func New(cfg Config) *Game {
	if cfg.Name == "" {
		cfg.Name = "you"
	}
	if cfg.Bots < 0 {
		cfg.Bots = 0
	}
	hud := NewHUD()
	hud.Debug = cfg.Debug
	return &Game{
		cfg:     cfg,
		session: NewGameSession(cfg.Seed),
		hud:     hud,
		input:   NewInput(),
		viewW:   WindowWidth,
		viewH:   WindowHeight,
	}
}

func (g *Game) Update() error {
	if g.input.DebugToggled() {
		g.hud.Debug = !g.hud.Debug
	}

	switch g.session.State {
	case StateMenu:
		if g.input.StartPressed() {
			g.startRun()
		}

	case StatePlaying:
		if g.input.QuitPressed() {
			// Back to the menu without a game-over signal. The stale world
			// stays as a backdrop until the next run replaces it.
			PlaySound(SoundMenuSelect)
			g.session.Stop()
			return nil
		}
		g.world.Step(g.input.Sample(g.viewW, g.viewH))
		if !g.world.PlayerAlive() {
			g.session.End()
			PlaySound(SoundGameOver)
		}

	case StateGameOver:
		if g.input.QuitPressed() {
			PlaySound(SoundMenuSelect)
			g.session.Stop()
			return nil
		}
		if g.input.StartPressed() {
			g.startRun()
		}
	}
	return nil
}

func (g *Game) startRun() {
	g.hud.Reset()
	g.world = g.session.Start(g.cfg.Name, g.cfg.Bots, g.hud)
	PlaySound(SoundSpawn)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	vw := screen.Bounds().Dx()
	vh := screen.Bounds().Dy()
	if g.world != nil {
		DrawWorld(screen, g.world, vw, vh)
	} else {
		idle := Camera{}
		drawBackdrop(screen, &idle, vw, vh)
	}
	g.hud.Draw(screen, g.session.State, g.world, vw, vh)
}

// Layout keeps the canvas at the window's pixel size; the viewport may
// resize at any time and the next input sample just uses the new size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewW, g.viewH = outsideWidth, outsideHeight
	}
	return g.viewW, g.viewH
}
