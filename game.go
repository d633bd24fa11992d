package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/physics"
	"github.com/milk9111/glider/prefabs"
	"github.com/milk9111/glider/render"
	"github.com/milk9111/glider/system"
	"github.com/milk9111/glider/telemetry"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tps        = 60
)

type Options struct {
	Script string
	Debug  bool
	Watch  bool
	Trace  *telemetry.TraceWriter
	Logger *slog.Logger
}

type Game struct {
	opts   Options
	logger *slog.Logger

	cfg   component.Player
	level prefabs.LevelSpec

	world  *physics.World
	body   *physics.Body
	input  *component.Input
	source system.InputSource
	camera *system.CameraSystem
	runner *system.Runner
	hud    *render.HUD
	scene  *render.Scene

	watcher *prefabs.Watcher
	mods    prefabs.ModTracker
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	g := &Game{
		opts:   opts,
		logger: opts.Logger,
		scene:  render.NewScene(),
		mods:   prefabs.ModTracker{},
	}
	g.mods.Changed(prefabs.PlayerFile)
	g.mods.Changed(prefabs.LevelFile)

	cfg, err := prefabs.LoadPlayer()
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}
	g.cfg, g.level = cfg, level

	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// restart rebuilds the level and a fresh controller. Energy only resets here.
func (g *Game) restart() error {
	return g.rebuild(nil)
}

// rebuild is restart with an optional camera carried over from the old run.
func (g *Game) rebuild(camera *system.CameraSystem) error {
	world, body, err := g.level.Build()
	if err != nil {
		return err
	}

	source := system.InputSource(&deviceInput{})
	if g.opts.Script != "" {
		s, err := system.LoadScriptedInput(g.opts.Script)
		if err != nil {
			return err
		}
		source = s
	}

	input := &component.Input{}
	if camera == nil {
		camera = system.NewCameraSystem(g.cfg.CameraRotationSpeed, g.level.Spawn.Yaw)
	}
	hud := render.NewHUD()
	pc, err := system.NewPlayerController(g.cfg, body, input,
		system.WithCamera(camera),
		system.WithObserver(hud),
		system.WithLogger(g.logger),
	)
	if err != nil {
		return err
	}
	runner, err := system.NewRunner(input, source, camera, pc, world, g.level.Step())
	if err != nil {
		return err
	}

	g.world, g.body, g.input, g.source = world, body, input, source
	g.camera, g.hud, g.runner = camera, hud, runner
	g.scene = render.NewScene()
	g.logger.Info("level ready", "level", g.level.Name, "platforms", len(g.level.Platforms), "script", g.opts.Script)
	return nil
}

func (g *Game) reload(c prefabs.Change) {
	if !g.mods.Changed(c.Path) {
		return
	}
	var camera *system.CameraSystem
	switch c.Kind {
	case prefabs.ChangePlayer:
		cfg, err := prefabs.LoadPlayer()
		if err != nil {
			log.Printf("reload %s: %v", c.Path, err)
			return
		}
		g.cfg = cfg
		// keep the view while retuning
		camera = g.camera
		camera.SetSpeed(cfg.CameraRotationSpeed)
	case prefabs.ChangeLevel:
		level, err := prefabs.LoadLevelSpec()
		if err != nil {
			log.Printf("reload %s: %v", c.Path, err)
			return
		}
		g.level = level
	case prefabs.ChangeScript:
		if g.opts.Script == "" {
			return
		}
	}
	if err := g.rebuild(camera); err != nil {
		log.Printf("reload %s: %v", c.Path, err)
		return
	}
	g.logger.Info("reloaded", "kind", c.Kind.String(), "path", c.Path)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(c)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if pauseToggled() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scene.Zoom(1 + dy*0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	if _, err := g.runner.Frame(1.0 / tps); err != nil {
		return err
	}
	if g.body.Position().Y() < g.level.KillY {
		g.logger.Info("fell out of the level", "y", g.body.Position().Y())
		if err := g.restart(); err != nil {
			return err
		}
	}

	pc := g.runner.Controller()
	g.scene.Track(g.body.Position(), g.hud.Trails())
	if g.opts.Trace != nil {
		if err := g.opts.Trace.Write(telemetry.SampleOf(g.runner.Frames(), g.runner.Time(), pc)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) setPaused(p bool) {
	g.paused = p
	if p {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	pc := g.runner.Controller()
	cfg := pc.Config()
	g.scene.Draw(screen, render.View{
		World:     g.world,
		Position:  g.body.Position(),
		Yaw:       g.body.Yaw(),
		Roll:      pc.Pivot().Roll(),
		CameraYaw: g.camera.Yaw(),
		Grounded:  g.body.Grounded(cfg.GroundCastLength, cfg.GroundLayer),
	})
	g.hud.Draw(screen)

	if g.opts.Debug {
		pos, vel := g.body.Position(), g.body.Velocity()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  state: %s\npos: %.2f %.2f %.2f\nvel: %.2f %.2f %.2f\nbooster: %.2f  roll: %.1f  cam: %.1f / %.1f",
			ebiten.ActualFPS(), pc.State(),
			pos.X(), pos.Y(), pos.Z(),
			vel.X(), vel.Y(), vel.Z(),
			pc.BoosterForce(), pc.Pivot().Roll(), g.camera.Yaw(), g.camera.Pitch(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
