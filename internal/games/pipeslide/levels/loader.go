// Package levels provides layout loading for PipeSlide.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete layout definition.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Layout   core.Layout
	Metadata map[string]string
	FilePath string
}

// Source returns a layout source that always yields this level.
func (l *Level) Source() core.FixedLayout {
	return core.FixedLayout{Rows: l.Rows, Cols: l.Cols, Value: l.Layout}
}

// Validate builds a throwaway board to check the level is playable.
func (l *Level) Validate() error {
	if _, err := core.NewBoard(l.Rows, l.Cols, l.Layout, core.BoardOptions{}); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the layouts compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		if level.Validate() != nil {
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single layout file, relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(name)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Layout:   parsed.Layout,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.Root, name),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve finds a layout by ID or file path. A path to an existing file is
// loaded directly; anything else is looked up among the builtin layouts.
func Resolve(ref string) (Level, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		lvl, err := NewLoader(filepath.Dir(ref)).LoadFile(filepath.Base(ref))
		if err != nil {
			return Level{}, err
		}
		if err := lvl.Validate(); err != nil {
			return Level{}, err
		}
		return lvl, nil
	}
	return Builtin().LoadByID(ref)
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
