package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/importer"
	"github.com/reoring/skema/server"
)

// errInvalid marks a run that completed but found invalid input; main maps
// it to exit status 1 without printing it again.
var errInvalid = errors.New("input is invalid")

// fileConfig is the shape of the --config file. Server settings sit at the
// top level next to the CLI settings.
type fileConfig struct {
	Lang          string `mapstructure:"lang"`
	LogFormat     string `mapstructure:"log_format"`
	Verbose       bool   `mapstructure:"verbose"`
	server.Config `mapstructure:",squash"`
}

type app struct {
	configPath string
	lang       string
	logFormat  string
	verbose    bool

	cfg    fileConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "skema",
		Short:         "Validate JSON and YAML documents against schema descriptors",
		Long:          `skema imports JSON Schema style descriptors and validates documents against them, from the command line or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.lang, "lang", "", "message language (en, ja)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newValidateCmd(a), newInspectCmd(a), newServeCmd(a))
	return root
}

// setup loads the config file and applies flags over it. Flags win only when
// the user set them.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = fileConfig{Lang: "en", LogFormat: "text", Config: server.DefaultConfig()}
	if a.configPath != "" {
		if err := loadConfig(a.configPath, &a.cfg); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		a.cfg.Lang = a.lang
	}
	if flags.Changed("log-format") {
		a.cfg.LogFormat = a.logFormat
	}
	if flags.Changed("verbose") {
		a.cfg.Verbose = a.verbose
	}
	i18n.SetLanguage(a.cfg.Lang)

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogFormat, a.cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func loadConfig(path string, out *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadSchema imports a descriptor file, chosen by extension, and logs the
// importer's warnings.
func (a *app) loadSchema(path string) (skema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	load := importer.FromJSON
	if isYAML(path) {
		load = importer.FromYAML
	}
	s, diag, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	for _, w := range diag.Warnings() {
		a.logger.Warn("schema import warning", "schema", path, "warning", w)
	}
	return s, nil
}
