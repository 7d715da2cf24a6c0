package levels_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/levels"
)

// getTestdataPath returns path to testdata/layouts.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "layouts")
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 1 {
		t.Fatalf("expected 1 valid layout, got %d", len(lvls))
	}
	if lvls[0].ID != "corner" {
		t.Errorf("expected ID 'corner', got %q", lvls[0].ID)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadFile("corner.yaml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.Rows != 2 || lvl.Cols != 3 {
		t.Errorf("expected 2x3, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if len(lvl.Layout.Gaps) != 1 || lvl.Layout.Gaps[0] != 2 {
		t.Errorf("expected gaps [2], got %v", lvl.Layout.Gaps)
	}
	if got := lvl.Layout.Shapes[4]; got != core.Elbow(core.DirLeft) {
		t.Errorf("expected E< at 4, got %s", got)
	}

	if _, err := loader.LoadFile("broken.yaml"); err == nil {
		t.Error("expected error for ragged grid")
	}
	if _, err := loader.LoadFile("missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuiltinLayouts(t *testing.T) {
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	want := []string{"switchback", "tutorial"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestTutorialBuildsEngine(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("tutorial")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	e, err := core.NewEngine(core.EngineConfig{Rows: lvl.Rows, Cols: lvl.Cols, Layout: lvl.Source()})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if e.Board().ActiveIndex() != 6 {
		t.Errorf("expected active 6, got %d", e.Board().ActiveIndex())
	}
	if len(e.Board().Gaps()) != 3 {
		t.Errorf("expected 3 gaps, got %v", e.Board().Gaps())
	}
}

func TestResolve(t *testing.T) {
	lvl, err := levels.Resolve(filepath.Join(getTestdataPath(), "corner.yaml"))
	if err != nil {
		t.Fatalf("Resolve(path) failed: %v", err)
	}
	if lvl.ID != "corner" {
		t.Errorf("expected corner, got %q", lvl.ID)
	}

	lvl, err = levels.Resolve("switchback")
	if err != nil {
		t.Fatalf("Resolve(id) failed: %v", err)
	}
	if lvl.Cols != 8 {
		t.Errorf("expected 8 cols, got %d", lvl.Cols)
	}

	if _, err := levels.Resolve("nope"); err == nil {
		t.Error("expected error for unknown layout")
	}
}
