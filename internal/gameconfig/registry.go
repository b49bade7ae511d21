package gameconfig

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"offsets-finder/internal/model"

	"github.com/rs/zerolog/log"
)

//go:embed tables/*.yaml
var embedded embed.FS

// Registry holds the offset table of every variant.
type Registry struct {
	tables map[model.Variant]model.GameConfig
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Get returns the built-in table for a variant.
func Get(v model.Variant) model.GameConfig {
	defaultOnce.Do(func() {
		r, err := NewRegistry("")
		if err != nil {
			panic(fmt.Sprintf("gameconfig: built-in tables: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry.Get(v)
}

// NewRegistry loads the embedded tables. When dir is not empty, any
// <dir>/<slug>.yaml replaces the embedded table of that variant.
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{tables: make(map[model.Variant]model.GameConfig, len(model.Variants))}

	for _, v := range model.Variants {
		data, err := fs.ReadFile(embedded, "tables/"+v.Slug()+".yaml")
		if err != nil {
			return nil, fmt.Errorf("read embedded table %s: %w", v.Slug(), err)
		}
		t, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode embedded table %s: %w", v.Slug(), err)
		}
		r.tables[v] = t.Config
	}

	if dir == "" {
		return r, nil
	}

	for _, v := range model.Variants {
		path := filepath.Join(dir, v.Slug()+".yaml")
		t, err := LoadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if t.Variant != "" && t.Variant != v.Slug() {
			return nil, fmt.Errorf("table %s declares variant %q, want %q", path, t.Variant, v.Slug())
		}

		r.tables[v] = t.Config
		log.Info().Str("variant", v.Name()).Str("path", path).Int("targets", t.Config.TargetCount()).Msg("Loaded custom offset table")
	}

	return r, nil
}

// Get returns the table for a variant. Unrecognized variants get the
// standard Free Fire table.
func (r *Registry) Get(v model.Variant) model.GameConfig {
	switch v {
	case model.FreeFire:
		return r.tables[model.FreeFire]
	case model.FreeFireMax:
		return r.tables[model.FreeFireMax]
	case model.FreeFireTela:
		return r.tables[model.FreeFireTela]
	default:
		log.Warn().Int("variant", int(v)).Msg("Unknown game variant, using Free Fire table")
		return r.tables[model.FreeFire]
	}
}
