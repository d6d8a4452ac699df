// Package messages holds the status text emitted by mine subsystems.
package messages

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QuantityPlaceholder marks where the recorded quantity is interpolated.
const QuantityPlaceholder = "{quantity}"

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
	DefaultLocale    = LocaleEnglish
)

var (
	ErrUnknownLocale  = errors.New("unknown message locale")
	ErrInvalidCatalog = errors.New("invalid message catalog")
)

// Catalog is one complete set of subsystem status messages.
type Catalog struct {
	ExtractionStarted    string `toml:"extraction_started"`
	ExtractionStopped    string `toml:"extraction_stopped"`
	TransportLoaded      string `toml:"transport_loaded"`
	TransportUnloaded    string `toml:"transport_unloaded"`
	PurificationStarted  string `toml:"purification_started"`
	PurificationFinished string `toml:"purification_finished"`
	ProductionRecorded   string `toml:"production_recorded"`
}

var builtin = map[string]Catalog{
	LocaleEnglish: {
		ExtractionStarted:    "extraction started: mining machines running...",
		ExtractionStopped:    "extraction stopped: mining machines shut down...",
		TransportLoaded:      "transport loaded: trucks loaded with ore...",
		TransportUnloaded:    "transport unloaded: ore delivered to purification...",
		PurificationStarted:  "purification started: gold refining in progress...",
		PurificationFinished: "purification finished: purified gold stored...",
		ProductionRecorded:   "production record: {quantity} kg of gold processed.",
	},
	LocalePortuguese: {
		ExtractionStarted:    "Máquinas de extração iniciadas...",
		ExtractionStopped:    "Máquinas de extração desligadas...",
		TransportLoaded:      "Caminhões carregados com minério...",
		TransportUnloaded:    "Minério descarregado na purificação...",
		PurificationStarted:  "Processo de purificação do ouro iniciado...",
		PurificationFinished: "Ouro purificado e armazenado...",
		ProductionRecorded:   "Registro de produção: {quantity} kg de ouro processados.",
	},
}

// Default returns the English catalog.
func Default() Catalog {
	return builtin[DefaultLocale]
}

// ForLocale returns a built-in catalog by locale name.
func ForLocale(locale string) (Catalog, error) {
	name := strings.TrimSpace(locale)
	if name == "" {
		return Default(), nil
	}
	for key, cat := range builtin {
		if strings.EqualFold(key, name) {
			return cat, nil
		}
	}
	return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// Locales lists built-in locale names in stable order.
func Locales() []string {
	out := make([]string, 0, len(builtin))
	for key := range builtin {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Validate checks that every message is present and the record template
// carries exactly one quantity placeholder.
func (c Catalog) Validate() error {
	fields := map[string]string{
		"extraction_started":    c.ExtractionStarted,
		"extraction_stopped":    c.ExtractionStopped,
		"transport_loaded":      c.TransportLoaded,
		"transport_unloaded":    c.TransportUnloaded,
		"purification_started":  c.PurificationStarted,
		"purification_finished": c.PurificationFinished,
		"production_recorded":   c.ProductionRecorded,
	}
	for name, text := range fields {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidCatalog, name)
		}
	}
	if n := strings.Count(c.ProductionRecorded, QuantityPlaceholder); n != 1 {
		return fmt.Errorf("%w: production_recorded needs one %s placeholder, found %d",
			ErrInvalidCatalog, QuantityPlaceholder, n)
	}
	return nil
}

// Record renders the production record message for quantity.
func (c Catalog) Record(quantity float64) string {
	return strings.Replace(c.ProductionRecorded, QuantityPlaceholder, FormatQuantity(quantity), 1)
}

// FormatQuantity renders the shortest decimal form of quantity.
func FormatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}

// merge fills empty fields of c from base.
func (c Catalog) merge(base Catalog) Catalog {
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}
	return Catalog{
		ExtractionStarted:    pick(c.ExtractionStarted, base.ExtractionStarted),
		ExtractionStopped:    pick(c.ExtractionStopped, base.ExtractionStopped),
		TransportLoaded:      pick(c.TransportLoaded, base.TransportLoaded),
		TransportUnloaded:    pick(c.TransportUnloaded, base.TransportUnloaded),
		PurificationStarted:  pick(c.PurificationStarted, base.PurificationStarted),
		PurificationFinished: pick(c.PurificationFinished, base.PurificationFinished),
		ProductionRecorded:   pick(c.ProductionRecorded, base.ProductionRecorded),
	}
}
