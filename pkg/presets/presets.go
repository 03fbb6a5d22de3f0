package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
	"gopkg.in/yaml.v3"
)

// Package presets loads named saved searches from YAML/JSON files.

// Preset is one saved search.
type Preset struct {
	ID       string `json:"id" yaml:"id"`
	Topic    string `json:"topic" yaml:"topic"`
	Window   string `json:"window" yaml:"window"`
	SortBy   string `json:"sort_by" yaml:"sort_by"`
	Language string `json:"language" yaml:"language"`
}

// Request converts the preset into a search request. Only valid after validation.
func (p Preset) Request() domain.SearchRequest {
	return domain.SearchRequest{
		Topic:    p.Topic,
		Window:   domain.Window(p.Window),
		SortBy:   domain.SortBy(p.SortBy),
		Language: domain.Language(p.Language),
	}
}

type file struct {
	Presets []Preset `json:"presets" yaml:"presets"`
}

// Registry is an immutable set of presets indexed by id.
type Registry struct {
	presets []Preset
	idx     map[string]Preset
}

// Empty returns a registry with no presets.
func Empty() *Registry {
	return &Registry{idx: map[string]Preset{}}
}

// LoadRegistry loads presets from path.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("presets file path is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets file: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	return Parse(raw, filepath.Ext(path))
}

// LoadOptional is LoadRegistry that treats a missing file as an empty registry.
func LoadOptional(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return Empty(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Empty(), nil
	}
	return LoadRegistry(path)
}

// Parse decodes presets from data. ext selects the decoder; empty ext tries all.
func Parse(data []byte, ext string) (*Registry, error) {
	parsed, err := parseFile(data, ext)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]Preset, len(parsed.Presets))
	for i := range parsed.Presets {
		p := sanitizePreset(parsed.Presets[i])
		if err := validatePreset(p); err != nil {
			return nil, fmt.Errorf("preset[%d]: %w", i, err)
		}
		if _, exists := idx[p.ID]; exists {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		parsed.Presets[i] = p
		idx[p.ID] = p
	}

	return &Registry{presets: parsed.Presets, idx: idx}, nil
}

// All returns a copy of the presets in file order.
func (r *Registry) All() []Preset {
	if r == nil || len(r.presets) == 0 {
		return nil
	}
	out := make([]Preset, len(r.presets))
	copy(out, r.presets)
	return out
}

// IDs returns the preset ids sorted.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.idx))
	for id := range r.idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByID returns the preset for id, if loaded.
func (r *Registry) ByID(id string) (Preset, bool) {
	id = strings.TrimSpace(id)
	if r == nil || id == "" {
		return Preset{}, false
	}
	p, ok := r.idx[id]
	return p, ok
}

func parseFile(data []byte, ext string) (file, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	var lastErr error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var f file
		if err := d.fn(data, &f); err != nil {
			lastErr = fmt.Errorf("decode %s presets: %w", d.name, err)
			continue
		}
		return f, nil
	}

	if lastErr != nil {
		return file{}, lastErr
	}
	return file{}, fmt.Errorf("presets file format %q not recognized (expected YAML or JSON)", ext)
}

type unmarshalFn func([]byte, any) error

// sanitizePreset trims fields and defaults empty selectors to their first option.
func sanitizePreset(p Preset) Preset {
	p.ID = strings.TrimSpace(p.ID)
	p.Window = strings.TrimSpace(p.Window)
	p.SortBy = strings.TrimSpace(p.SortBy)
	p.Language = strings.TrimSpace(p.Language)

	if p.Window == "" {
		p.Window = string(domain.Windows()[0])
	}
	if p.SortBy == "" {
		p.SortBy = string(domain.SortOrders()[0])
	}
	if p.Language == "" {
		p.Language = string(domain.Languages()[0])
	}
	return p
}

func validatePreset(p Preset) error {
	if p.ID == "" {
		return errors.New("id is required")
	}
	if _, err := domain.ParseWindow(p.Window); err != nil {
		return fmt.Errorf("preset %q: %w", p.ID, err)
	}
	if _, err := domain.ParseSortBy(p.SortBy); err != nil {
		return fmt.Errorf("preset %q: %w", p.ID, err)
	}
	if _, err := domain.ParseLanguage(p.Language); err != nil {
		return fmt.Errorf("preset %q: %w", p.ID, err)
	}
	return nil
}
