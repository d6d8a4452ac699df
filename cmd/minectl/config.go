package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/minectl/internal/messages"
)

var errInvalidConfig = errors.New("invalid config")

type appConfig struct {
	Quantity    float64
	Locale      string
	CatalogPath string
	Serve       bool
	ServeAddr   string
	CorsOrigins []string
}

type fileConfig struct {
	Quantity    float64  `toml:"quantity"`
	Locale      string   `toml:"locale"`
	Catalog     string   `toml:"catalog"`
	ServeAddr   string   `toml:"serve_addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func defaultConfig() appConfig {
	return appConfig{
		Quantity:  50,
		Locale:    messages.DefaultLocale,
		ServeAddr: "127.0.0.1:8080",
	}
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load minectl config: %w", err)
	}

	if meta.IsDefined("quantity") {
		cfg.Quantity = raw.Quantity
	}
	if meta.IsDefined("locale") {
		cfg.Locale = strings.TrimSpace(raw.Locale)
	}
	if meta.IsDefined("catalog") {
		cfg.CatalogPath = strings.TrimSpace(raw.Catalog)
	}
	if meta.IsDefined("serve_addr") {
		cfg.ServeAddr = strings.TrimSpace(raw.ServeAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return appConfig{}, fmt.Errorf("%w: unknown key %q", errInvalidConfig, undecoded[0].String())
	}
	return cfg, nil
}

// parseArgs resolves the config file first, then applies explicitly set flags.
func parseArgs(args []string, stderr io.Writer) (appConfig, error) {
	fs := flag.NewFlagSet("minectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional TOML config path")
	quantity := fs.Float64("quantity", 50, "kilograms of gold to record")
	locale := fs.String("locale", messages.DefaultLocale, "message locale: "+strings.Join(messages.Locales(), "|"))
	catalog := fs.String("catalog", "", "custom TOML message catalog path")
	serve := fs.Bool("serve", false, "serve the mine over HTTP instead of running once")
	addr := fs.String("addr", "", "HTTP listen address when serving")
	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}
	if fs.NArg() > 0 {
		return appConfig{}, fmt.Errorf("%w: unexpected argument %q", errInvalidConfig, fs.Arg(0))
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return appConfig{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quantity":
			cfg.Quantity = *quantity
		case "locale":
			cfg.Locale = strings.TrimSpace(*locale)
		case "catalog":
			cfg.CatalogPath = strings.TrimSpace(*catalog)
		case "addr":
			cfg.ServeAddr = strings.TrimSpace(*addr)
		}
	})
	cfg.Serve = *serve

	if err := validateConfig(cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func validateConfig(cfg appConfig) error {
	if cfg.CatalogPath == "" {
		if _, err := messages.ForLocale(cfg.Locale); err != nil {
			return fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
	}
	if cfg.Serve && cfg.ServeAddr == "" {
		return fmt.Errorf("%w: serve address is required", errInvalidConfig)
	}
	return nil
}

func resolveCatalog(cfg appConfig) (messages.Catalog, error) {
	if cfg.CatalogPath != "" {
		return messages.LoadFile(cfg.CatalogPath)
	}
	return messages.ForLocale(cfg.Locale)
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
