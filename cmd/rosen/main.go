package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nyiyui.ca/hato/rosen/config"
	"nyiyui.ca/hato/rosen/kujo"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/line/preset/cta"
	"nyiyui.ca/hato/rosen/registry"
	"nyiyui.ca/hato/rosen/render"
	"nyiyui.ca/hato/rosen/sakuragi"
	"nyiyui.ca/hato/rosen/ui"
)

var configPath string
var formatName string
var serveAddr string
var origins string
var useUI bool

// redLineID is the id of the Red Line when no config is given.
var redLineID = uuid.MustParse("5e0b6c41-3d7a-4c59-9a8e-2f1d0c7b8a94")

func main() {
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.StringVar(&configPath, "config", "", "path to lines config (JSON); the southbound Red Line is used if empty")
	flag.StringVar(&formatName, "format", "diagram", "output format: list, dump, or diagram")
	flag.StringVar(&serveAddr, "serve", "", "address to serve HTTP on, e.g. 0.0.0.0:8001")
	flag.StringVar(&origins, "origins", "", "comma-separated CORS origins (empty allows all)")
	flag.BoolVar(&useUI, "ui", false, "show the terminal UI instead of printing")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)
	defer zap.S().Sync()

	err = main2()
	if err != nil {
		zap.S().Fatal(err)
	}
}

func main2() error {
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	r, err := loadRegistry()
	if err != nil {
		return err
	}

	if serveAddr != "" {
		var allowed []string
		if origins != "" {
			allowed = strings.Split(origins, ",")
		}
		s := kujo.NewServer(r, kujo.Conf{AllowedOrigins: allowed})
		s.Handle("/", sakuragi.New(sakuragi.Conf{Registry: r, Format: format}))
		zap.S().Infof("serving on %s…", serveAddr)
		if !useUI {
			return http.ListenAndServe(serveAddr, s)
		}
		go func() {
			err := http.ListenAndServe(serveAddr, s)
			zap.S().Fatalf("serve: %s", err)
		}()
	}

	if useUI {
		return ui.Main(r, format)
	}

	for _, snap := range r.List() {
		err = r.View(snap.ID, func(l *line.Line) error {
			return render.Render(os.Stdout, l, format)
		})
		if err != nil {
			return fmt.Errorf("render %s: %w", snap.Name, err)
		}
	}
	return nil
}

func loadRegistry() (*registry.Registry, error) {
	r := registry.New()
	if configPath == "" {
		return r, r.Add(redLineID, cta.RedLine())
	}
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	for i, lc := range c.Lines {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		err = r.Add(lc.ID, l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		zap.S().Debugw("loaded line", "id", lc.ID, "line", l)
	}
	return r, nil
}
