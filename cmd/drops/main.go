package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"led-drops/internal/game"
	"led-drops/internal/output"
	"led-drops/internal/scene"
)

var (
	scenePath = flag.String("scene", "", "YAML scene file (default: the built-in three-drop scene)")
	outMode   = flag.String("out", "text", "frame output: text, ansi or screen")
	maxTicks  = flag.Uint64("ticks", 0, "stop after this many frames (0 runs until interrupted)")
	verbose   = flag.Bool("v", false, "log debug diagnostics")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "drops animates expanding color rings on a small pixel grid and writes")
	fmt.Fprintln(os.Stderr, "one frame per tick to stdout. Diagnostics go to stderr.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "The scene file may also be given in the DROPS_SCENE environment variable.")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := output.NewDiagnostics(os.Stderr, "drops", *verbose)

	path := *scenePath
	if path == "" {
		path = os.Getenv("DROPS_SCENE")
	}

	sc := scene.DefaultScene()
	if path != "" {
		loaded, err := scene.LoadScene(path)
		if err != nil {
			logger.Fatal("could not load scene", "path", path, "err", err)
		}
		sc = loaded
	}
	logger.Info("scene loaded", "scene", sc.String())
	if logger.IsDebug() {
		for i, d := range sc.Drops {
			logger.Debug("drop", "index", i, "x", d.X, "y", d.Y, "color", d.Color.Hex(), "growth", d.Params.Growth)
		}
	}

	sink, closer, err := openSink(*outMode)
	if err != nil {
		logger.Fatal("could not open output", "out", *outMode, "err", err)
	}
	if closer != nil {
		// frame lines would tear the preview
		if !*verbose {
			logger.SetLevel(logxi.LevelWarn)
		}
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sc.Build(sink, game.LoopConfig{MaxTicks: *maxTicks, Logger: logger})
	if err := loop.Run(ctx); err != nil {
		logger.Error("frame loop stopped", "err", err, "ticks", loop.Ticks())
		if closer != nil {
			closer.Close()
		}
		os.Exit(1)
	}
	logger.Info("stopped", "ticks", loop.Ticks(), "sprites", loop.Len())
}

func openSink(mode string) (game.FrameWriter, io.Closer, error) {
	switch mode {
	case "text":
		return output.NewTextSink(os.Stdout), nil, nil
	case "ansi":
		s := output.NewANSISink(os.Stdout)
		return output.NewSkipUnchanged(s), s, nil
	case "screen":
		s, err := output.OpenScreen()
		if err != nil {
			return nil, nil, err
		}
		return output.NewSkipUnchanged(s), s, nil
	default:
		return nil, nil, errors.Errorf("unknown output %q", mode)
	}
}
