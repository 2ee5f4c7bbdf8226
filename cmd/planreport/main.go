// Command planreport prints the vector report of architectural PDF
// drawings and, given a building model, its derived quantities.
//
// Usage:
//
//	planreport [-pages 1,2] [-model modelo.json] [-overlay dir] [-scale 2] planta.pdf...
//
// Settings not covered by flags come from the environment, optionally
// through a .env file: TAKEOFF_CONCURRENCY, TAKEOFF_UNIT_PREFERENCE,
// TAKEOFF_LOG_LEVEL and TAKEOFF_TIMEOUT.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/obrafacil/takeoff"
	"github.com/obrafacil/takeoff/internal/config"
	"github.com/obrafacil/takeoff/quantity"
	"github.com/obrafacil/takeoff/render"
	"github.com/obrafacil/takeoff/report"
)

func main() {
	log := logrus.New()
	if err := run(log, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger, args []string) error {
	fset := flag.NewFlagSet("planreport", flag.ContinueOnError)
	pagesFlag := fset.String("pages", "", "comma-separated page numbers (default all)")
	modelPath := fset.String("model", "", "building model JSON to validate and derive")
	overlayDir := fset.String("overlay", "", "directory for PNG overlays of qualifying pages")
	scale := fset.Float64("scale", 1, "overlay pixels per PDF unit")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() == 0 {
		fset.Usage()
		return errors.New("no input files")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("reading .env")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log.SetLevel(cfg.LogLevel)

	pages, err := parsePages(*pagesFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	ext := takeoff.Open(fset.Args()...).
		Pages(pages...).
		Concurrency(cfg.Concurrency).
		UnitPreference(cfg.UnitPreference).
		Logger(log)

	// Document and page failures are logged by the extractor.
	facts, _, err := ext.Facts(ctx)
	if err != nil {
		return err
	}

	rep := report.Summarize(facts)
	if rep == "" {
		log.Info("no page qualified for the vector report")
	}
	fmt.Print(rep)

	var m *quantity.Model
	if *modelPath != "" {
		m, err = readModel(*modelPath)
		if err != nil {
			return err
		}
		res := quantity.Apply(m)
		for _, w := range res.Warnings {
			log.Warn(w)
		}
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
	}

	if *overlayDir != "" {
		return writeOverlays(log, *overlayDir, facts, m, *scale)
	}
	return nil
}

// parsePages parses "1,3,5" into page numbers.
func parsePages(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var pages []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

func readModel(path string) (*quantity.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()
	return quantity.DecodeModel(f)
}

// writeOverlays renders one PNG per qualifying page. Walls are drawn on
// the page whose position among the qualifying pages matches their
// floorPlanIndex; walls without one are drawn on every page.
func writeOverlays(log *logrus.Logger, dir string, facts []report.PageFacts, m *quantity.Model, scale float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating overlay directory: %w", err)
	}

	index := 0
	for _, f := range facts {
		if !f.Qualifies() {
			continue
		}

		var walls []quantity.Wall
		if m != nil {
			for _, w := range m.Walls {
				if w.FloorPlanIndex == nil || *w.FloorPlanIndex == index {
					walls = append(walls, w)
				}
			}
		}
		index++

		name := fmt.Sprintf("%s-p%d.png", strings.TrimSuffix(filepath.Base(f.File), filepath.Ext(f.File)), f.Page)
		path := filepath.Join(dir, name)
		if err := writePNG(path, render.Overlay(f.Geometry, walls, scale)); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": f.File, "page": f.Page, "overlay": path}).Info("overlay written")
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating overlay: %w", err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
