package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/glider/logger"
	"github.com/milk9111/glider/telemetry"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	script := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts (demo mode)")
	watch := flag.Bool("watch", true, "reload prefabs/*.yaml and scripts when they change on disk")
	tracePath := flag.String("trace", "", "write a per-frame CSV trace to this file")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "console", "console, text or json")
	flag.Parse()

	lg := logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})

	var trace *telemetry.TraceWriter
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		trace = telemetry.NewTraceWriter(f)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("glider")
	ebiten.SetTPS(tps)

	game, err := NewGame(Options{
		Script: *script,
		Debug:  *debug,
		Watch:  *watch,
		Trace:  trace,
		Logger: lg,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}
