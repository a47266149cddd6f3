// Package game wires the manager, systems, quiz and renderer into the
// real-time frame loop.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"clue-hunter/assets"
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/factory"
	"clue-hunter/internal/media"
	"clue-hunter/internal/quiz"
	"clue-hunter/internal/render"
	"clue-hunter/internal/session"
	"clue-hunter/internal/system"
	"clue-hunter/internal/vmath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// maxStep caps the simulated time of one frame so a stall does not
// teleport bodies through walls.
const maxStep = 0.1

// carry is what the player keeps between levels.
type carry struct {
	hp, ammo int
}

// Game is the top-level orchestrator.
type Game struct {
	cfg      Config
	log      *slog.Logger
	screen   tcell.Screen
	renderer *render.Renderer
	media    media.Provider
	rng      *rand.Rand

	manager *ecs.Manager
	session *session.State
	quiz    *quiz.Quiz
	levels  *system.Level
	world   vmath.Vec2

	quit bool
}

// New creates a Game drawing to an initialised screen.
func New(screen tcell.Screen, provider media.Provider, cfg Config) (*Game, error) {
	if err := component.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register components: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultConfig().Logger
	}
	cfg.Logger.Debug("components registered", "types", ecs.RegisteredTypes())
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	if provider == nil {
		provider = media.Nop{}
	}
	g := &Game{
		cfg:      cfg,
		log:      cfg.Logger,
		screen:   screen,
		renderer: render.NewRenderer(screen),
		media:    provider,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart begins a fresh run at the configured start level.
func (g *Game) restart() error {
	s := session.New(g.cfg.Clock, g.media)
	g.session = s
	g.manager = ecs.NewManager()
	g.quiz = quiz.New(s, g.manager, assets.Questions)
	g.levels = system.NewLevel(s, g.lastLevel())

	g.manager.AddSystem(system.NewShooting(s, factory.Shooter(s, assets.Pistol)))
	g.manager.AddSystem(system.NewCollision(s, g.quiz, g.cfg.Rules))
	g.manager.AddSystem(g.quiz)
	g.manager.AddSystem(g.levels)
	g.resize()

	start := max(g.cfg.StartLevel, 1)
	g.log.Info("new run", "level", start, "seed", g.cfg.Seed)
	g.media.StopMusic()
	g.media.PlayMusic(assets.MusicTheme, g.cfg.MusicVolume, -1)
	return g.loadLevel(start, carry{})
}

// loadLevel clears the manager and spawns the given level. A non-zero
// carry overrides the fresh player's health and ammo.
func (g *Game) loadLevel(level int, c carry) error {
	gm, err := g.levelMap(level)
	if err != nil {
		return err
	}
	g.manager.Clear()
	g.quiz.Reset()

	s := g.session
	s.StartLevel(level, 0)
	spawned, err := factory.SpawnMap(g.manager, s, gm)
	if err != nil {
		return fmt.Errorf("level %d: %w", level, err)
	}
	s.CluesTotal = spawned.Clues
	if c.hp > 0 {
		if h, ok := ecs.Lookup[*component.Health](spawned.Player); ok {
			h.Current = min(c.hp, h.Max)
		}
	}
	if c.hp > 0 || c.ammo > 0 {
		if a, ok := ecs.Lookup[*component.Ammo](spawned.Player); ok {
			a.Current = min(c.ammo, a.Max)
		}
	}
	g.world = vmath.V(float64(gm.Width)*component.TileSize, float64(gm.Height)*component.TileSize)
	s.Say(fmt.Sprintf("Level %d: find %d clues", level, spawned.Clues), 4*time.Second)
	g.log.Info("level loaded",
		"level", level,
		"size", fmt.Sprintf("%dx%d", gm.Width, gm.Height),
		"clues", spawned.Clues,
		"enemies", spawned.Enemies,
		"terrain", spawned.Terrain)
	return nil
}

// carryOver captures the player's health and ammo.
func (g *Game) carryOver() carry {
	var c carry
	p, ok := g.manager.Resolve(g.session.Player)
	if !ok {
		return c
	}
	if h, ok := ecs.Lookup[*component.Health](p); ok {
		c.hp = h.Current
	}
	if a, ok := ecs.Lookup[*component.Ammo](p); ok {
		c.ammo = a.Current
	}
	return c
}

// Step advances the simulation by dt seconds and draws a frame. While a
// modal state is up the world is frozen but systems still run their
// wall-clock timers.
func (g *Game) Step(dt float64) error {
	if g.session.Blocked() {
		dt = 0
	}
	g.manager.Update(min(dt, maxStep))
	g.manager.Refresh()

	if next, ok := g.levels.Next(); ok {
		if err := g.loadLevel(next, g.carryOver()); err != nil {
			return err
		}
	}
	g.renderer.Frame(g.manager, g.session, g.world)
	return nil
}

// eventBuffer is how many input events may queue between frames.
var eventBuffer = 32

// Run drives the game until the player quits or ctx is cancelled. It owns
// the screen and finalises it on return.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)

	// PollEvent returns nil once the screen is finalised.
	eg.Go(func() error {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	// The poller may be parked on a full channel; cancel releases it.
	eg.Go(func() error {
		defer cancel()
		defer g.screen.Fini()
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	last := g.session.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := g.handleEvent(ev); err != nil {
				return err
			}
			if g.quit {
				g.log.Info("quit", "level", g.session.Level, "kills", g.session.Kills)
				return nil
			}
		case <-ticker.C:
			now := g.session.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.Step(dt); err != nil {
				g.log.Error("step failed", "err", err)
				return err
			}
		}
	}
}

func (g *Game) resize() {
	g.renderer.Resize()
	w, h := g.renderer.Size()
	g.quiz.Width, g.quiz.Height = w, h-render.HUDRows
}

// handleEvent applies one terminal event.
func (g *Game) handleEvent(ev tcell.Event) error {
	s := g.session
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			g.quiz.Click(x, y)
		} else {
			g.quiz.Hover(x, y)
		}
	case *tcell.EventKey:
		action := keyToAction(ev)
		switch action {
		case ActionQuit:
			if g.quiz.Active() {
				g.quiz.Close()
				return nil
			}
			g.quit = true
		case ActionPause:
			switch s.Modal {
			case session.ModalNone:
				s.Modal = session.ModalPaused
			case session.ModalPaused:
				s.Modal = session.ModalNone
			}
		case ActionRestart:
			if s.Modal == session.ModalGameOver || s.Modal == session.ModalVictory {
				return g.restart()
			}
		case ActionAnswer1, ActionAnswer2, ActionAnswer3, ActionAnswer4:
			g.quiz.CheckAnswer(int(action - ActionAnswer1))
		default:
			if k, ok := actionKey(action); ok {
				s.Input.Press(k, s.Now())
			}
		}
	}
	return nil
}
