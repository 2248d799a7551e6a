package persistentsearch

import (
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/flygrounder/persistentsearch/widgets/suggestions"
)

// Attrs are construction-time styling attributes. None of them change how
// searching behaves.
type Attrs struct {
	Hint           string `toml:"hint"`
	BackLabel      string `toml:"back_label"`
	ClearLabel     string `toml:"clear_label"`
	ClearColor     string `toml:"clear_color"`
	Background     string `toml:"background"`
	MaxSuggestions int    `toml:"max_suggestions"`
}

func DefaultAttrs() Attrs {
	return Attrs{
		BackLabel:      "←",
		ClearLabel:     "✕",
		ClearColor:     "#ff0000",
		Background:     "#000000",
		MaxSuggestions: suggestions.DefaultMaxRows,
	}
}

// ParseAttrs decodes TOML attributes over the defaults. Malformed input
// yields the defaults, which carry an empty hint.
func ParseAttrs(data []byte) Attrs {
	attrs := DefaultAttrs()
	if err := toml.Unmarshal(data, &attrs); err != nil {
		slog.Warn("ignoring invalid search attributes", "error", err)
		return DefaultAttrs()
	}
	return attrs.withDefaults()
}

// LoadAttrs reads attributes from a TOML file, degrading like ParseAttrs
// when the file cannot be read.
func LoadAttrs(path string) Attrs {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("cannot read search attributes", "path", path, "error", err)
		return DefaultAttrs()
	}
	return ParseAttrs(data)
}

func (a Attrs) withDefaults() Attrs {
	def := DefaultAttrs()
	if a.BackLabel == "" {
		a.BackLabel = def.BackLabel
	}
	if a.ClearLabel == "" {
		a.ClearLabel = def.ClearLabel
	}
	if a.ClearColor == "" {
		a.ClearColor = def.ClearColor
	}
	if a.Background == "" {
		a.Background = def.Background
	}
	if a.MaxSuggestions < 1 {
		a.MaxSuggestions = def.MaxSuggestions
	}
	return a
}
