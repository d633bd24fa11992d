// Command sim runs a scripted input file against the level without a window
// and writes a per-frame CSV trace.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/logger"
	"github.com/milk9111/glider/prefabs"
	"github.com/milk9111/glider/system"
	"github.com/milk9111/glider/telemetry"
)

func main() {
	script := flag.String("script", "boost_glide.tengo", "tengo script in prefabs/scripts")
	frames := flag.Int("frames", 0, "frames to run; 0 uses the script's frames global")
	fps := flag.Float64("fps", 60, "rendered frames per second")
	out := flag.String("out", "", "trace CSV path; empty writes to stdout")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	list := flag.Bool("list", false, "list the embedded scripts and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(prefabs.ScriptNames(), "\n"))
		return
	}

	lg := logger.Init(logger.Config{Level: *logLevel, Format: "console", Output: os.Stderr})

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := run(*script, *frames, 1 / *fps, telemetry.NewTraceWriter(w), lg); err != nil {
		log.Fatal(err)
	}
}

func run(script string, frames int, dt float64, trace *telemetry.TraceWriter, lg *slog.Logger) error {
	cfg, err := prefabs.LoadPlayer()
	if err != nil {
		return err
	}
	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		return err
	}
	world, body, err := level.Build()
	if err != nil {
		return err
	}
	source, err := system.LoadScriptedInput(script)
	if err != nil {
		return err
	}

	input := &component.Input{}
	camera := system.NewCameraSystem(cfg.CameraRotationSpeed, level.Spawn.Yaw)
	pc, err := system.NewPlayerController(cfg, body, input,
		system.WithCamera(camera),
		system.WithLogger(lg),
	)
	if err != nil {
		return err
	}
	runner, err := system.NewRunner(input, source, camera, pc, world, level.Step())
	if err != nil {
		return err
	}

	summary := telemetry.NewSummary()
	for i := 0; frames <= 0 || i < frames; i++ {
		if _, err := runner.Frame(dt); err != nil {
			return err
		}
		if i == 0 && frames <= 0 {
			if frames = source.Frames(); frames <= 0 {
				return fmt.Errorf("sim: %s has no frames global; pass -frames", script)
			}
		}
		sample := telemetry.SampleOf(runner.Frames(), runner.Time(), pc)
		summary.Add(sample, dt)
		if err := trace.Write(sample); err != nil {
			return err
		}
		if body.Position().Y() < level.KillY {
			lg.Info("fell out of the level", "frame", runner.Frames())
			break
		}
	}
	lg.Info("run complete", "script", script, "summary", summary.String())
	return nil
}
