package gameconfig

import (
	"errors"
	"fmt"
	"os"

	"offsets-finder/internal/model"

	"gopkg.in/yaml.v2"
)

// ErrInvalidTarget is returned when a table entry is not exactly one of
// a fixed value, a pattern or a separator.
var ErrInvalidTarget = errors.New("invalid target")

// Table is a decoded offset table file.
type Table struct {
	// Variant is the slug the file declares, e.g. "freefire_max".
	Variant string
	Config  model.GameConfig
}

type tableFile struct {
	Variant    string         `yaml:"variant"`
	Categories []tableSection `yaml:"categories"`
}

type tableSection struct {
	Category string        `yaml:"category"`
	Targets  []tableTarget `yaml:"targets"`
}

type tableTarget struct {
	Name      string `yaml:"name"`
	Hex       string `yaml:"hex"`
	Pattern   string `yaml:"pattern"`
	Separator bool   `yaml:"separator"`
}

// LoadFile reads and decodes a YAML offset table.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode table %s: %w", path, err)
	}
	return t, nil
}

// Decode parses a YAML offset table.
func Decode(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	cfg := make(model.GameConfig, 0, len(f.Categories))
	for i, s := range f.Categories {
		category, err := model.ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("category #%d: %w", i+1, err)
		}

		targets := make([]model.Target, 0, len(s.Targets))
		for j, tt := range s.Targets {
			target, err := tt.build()
			if err != nil {
				return nil, fmt.Errorf("%s target #%d: %w", s.Category, j+1, err)
			}
			targets = append(targets, target)
		}

		cfg = append(cfg, model.Section{Category: category, Targets: targets})
	}

	return &Table{Variant: f.Variant, Config: cfg}, nil
}

func (tt tableTarget) build() (model.Target, error) {
	set := 0
	for _, ok := range []bool{tt.Hex != "", tt.Pattern != "", tt.Separator} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return model.Target{}, fmt.Errorf("%w: %q needs exactly one of hex, pattern or separator", ErrInvalidTarget, tt.Name)
	}

	switch {
	case tt.Separator:
		return model.NewSeparator(), nil
	case tt.Name == "":
		return model.Target{}, fmt.Errorf("%w: missing name", ErrInvalidTarget)
	case tt.Hex != "":
		return model.NewFixed(tt.Name, tt.Hex), nil
	default:
		return model.NewPattern(tt.Name, tt.Pattern), nil
	}
}
