package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"led-drops/internal/game"
	"led-drops/internal/render"
	"led-drops/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Usage: scenetool validate <scene-file>...")
			os.Exit(1)
		}
		os.Exit(runValidate(args))
	case "dump":
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(os.Stderr, "Usage: scenetool dump <scene-file> [ticks]")
			os.Exit(1)
		}
		ticks := 0
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 {
				fmt.Fprintf(os.Stderr, "Invalid tick count %q\n", args[1])
				os.Exit(1)
			}
			ticks = n
		}
		os.Exit(runDump(args[0], ticks))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: scenetool stats <scene-file>")
			os.Exit(1)
		}
		os.Exit(runStats(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: scenetool <command> <path>

Commands:
  validate <scene-file>...      Parse and check scene files
  dump     <scene-file> [ticks] Print frames as colored half blocks (default: until all drops expire)
  stats    <scene-file>         Show drop lifetimes and fade timing`)
}

// --- validate ---

func runValidate(paths []string) int {
	failed := 0
	for _, path := range paths {
		fmt.Printf("Validating %s...\n", path)
		s, err := scene.LoadScene(path)
		if err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			failed++
			continue
		}

		// Drops centred off-grid are legal but usually a typo
		for i, d := range s.Drops {
			if d.X < 0 || d.X >= s.Width || d.Y < 0 || d.Y >= s.Height {
				fmt.Printf("  WARN: drop %d centre (%d,%d) is outside the %dx%d grid\n", i, d.X, d.Y, s.Width, s.Height)
			}
			if d.Color == render.Black {
				fmt.Printf("  WARN: drop %d is black and will never show\n", i)
			}
		}
		fmt.Printf("  OK %s\n", s)
	}

	if failed > 0 {
		fmt.Printf("\n%d scene(s) invalid\n", failed)
		return 1
	}
	fmt.Printf("\nAll %d scene(s) valid\n", len(paths))
	return 0
}

// --- dump ---

type printer struct {
	frame int
}

func (p *printer) WriteFrame(c *render.Canvas) error {
	fmt.Printf("frame %d\n", p.frame)
	for _, row := range render.ANSIRows(c) {
		fmt.Println(row + render.Reset)
	}
	p.frame++
	return nil
}

func runDump(path string, ticks int) int {
	s, err := scene.LoadScene(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if ticks == 0 {
		if s.Rain != nil {
			fmt.Fprintln(os.Stderr, "Scene has rain and never goes quiet; pass a tick count")
			return 1
		}
		ticks = longestLifetime(s)
	}

	loop := s.Build(&printer{}, game.LoopConfig{})
	for i := 0; i < ticks; i++ {
		if err := loop.Tick(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// --- stats ---

func runStats(path string) int {
	s, err := scene.LoadScene(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s\n\n", s)
	fmt.Printf("  %-4s %-9s %-8s %6s %6s %8s\n", "drop", "centre", "color", "fade@", "ticks", "seconds")
	for i, d := range s.Drops {
		life := d.Params.Lifetime()
		fmt.Printf("  %-4d %-9s %-8s %6d %6d %8.2f\n",
			i, fmt.Sprintf("(%d,%d)", d.X, d.Y), d.Color.Hex(),
			fadeStart(d.Params), life, (s.Tick * time.Duration(life)).Seconds())
	}

	if s.Rain != nil {
		r := s.Rain
		fmt.Printf("\nRain: one drop every %d ticks (%v), hue step %.1f, %d ticks per drop\n",
			r.Every, s.Tick*time.Duration(r.Every), r.HueStep, r.Params.Lifetime())
		concurrent := math.Ceil(float64(r.Params.Lifetime()) / float64(r.Every))
		fmt.Printf("Steady state: about %.0f live drops\n", concurrent)
	} else {
		fmt.Printf("\nQuiet after %d ticks\n", longestLifetime(s))
	}
	return 0
}

// fadeStart is the first update after which the color starts fading.
func fadeStart(p game.DropParams) int {
	if p.Growth <= 0 {
		return -1
	}
	return int(math.Floor(p.DecayThreshold/p.Growth)) + 1
}

func longestLifetime(s *scene.Scene) int {
	longest := 0
	for _, d := range s.Drops {
		longest = max(longest, d.Params.Lifetime())
	}
	return longest
}
