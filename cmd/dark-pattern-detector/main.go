package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ironsheep/dark-pattern-detector/internal/config"
	"github.com/ironsheep/dark-pattern-detector/internal/detection"
	"github.com/ironsheep/dark-pattern-detector/internal/imaging"
	"github.com/ironsheep/dark-pattern-detector/internal/logger"
	"github.com/ironsheep/dark-pattern-detector/internal/ocr"
	"github.com/ironsheep/dark-pattern-detector/internal/pipeline"
	"github.com/ironsheep/dark-pattern-detector/internal/screen"
	"github.com/ironsheep/dark-pattern-detector/internal/server"
	"github.com/ironsheep/dark-pattern-detector/internal/ui"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const appID = "io.github.ironsheep.dark-pattern-detector"

func main() {
	mode := "gui"
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("dark-pattern-detector %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "scan":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: dark-pattern-detector scan <image>")
				os.Exit(2)
			}
			mode = "scan"
		case "mcp":
			mode = "mcp"
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(2)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	engine, err := ocr.NewTesseract(cfg.Languages(), cfg.TessdataPrefix)
	if err != nil {
		logger.WithError(err).Fatal("failed to start OCR engine")
	}
	defer engine.Close()

	logger.WithField("version", Version).WithField("tesseract", engine.Version()).Debug("starting")

	orch := pipeline.New(screen.NewDisplay(), engine, detection.NewMatcher())

	switch mode {
	case "scan":
		err = scan(orch, os.Args[2])
	case "mcp":
		err = server.New(orch, Version).Run()
	default:
		ui.New(app.NewWithID(appID), orch, cfg).ShowAndRun()
	}
	if err != nil {
		engine.Close()
		logger.WithError(err).Fatal(mode + " failed")
	}
}

// scan runs the pipeline once on an image file and prints both panels.
func scan(orch *pipeline.Orchestrator, path string) error {
	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}
	res, err := orch.Analyze(img)
	if err != nil {
		return err
	}
	fmt.Println(detection.TextPanel(res.Text))
	fmt.Println()
	fmt.Println(detection.PatternsPanel(res.Matches))
	return nil
}

func printUsage() {
	fmt.Println("dark-pattern-detector - flag manipulative marketing text on screen")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dark-pattern-detector              Open the capture window")
	fmt.Println("  dark-pattern-detector scan <image> Analyze an image file and print the results")
	fmt.Println("  dark-pattern-detector mcp          Serve the MCP tools over stdin/stdout")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  DPD_CONFIG=<path>            YAML config file")
	fmt.Println("  DPD_LANGUAGE=eng             Tesseract language(s), joined with '+'")
	fmt.Println("  DPD_TESSDATA_PREFIX=<dir>    Tesseract data directory")
	fmt.Println("  DPD_PREVIEW_SIZE=400         Preview thumbnail bound in pixels")
	fmt.Println("  DPD_WINDOW_WIDTH=700         Window width")
	fmt.Println("  DPD_WINDOW_HEIGHT=700        Window height")
	fmt.Println("  DPD_LOG_LEVEL=info           Log level (debug, info, warn, error)")
	fmt.Println("  DPD_ACCENT_COLOR=#c0392b     Heading color")
}
