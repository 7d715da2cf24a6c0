package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
active: 1
gaps: [4]
grid:
  - "S> E^ ."
  - "Sv e< S<"
`)

	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if l.Rows != 2 || l.Cols != 3 {
		t.Fatalf("size = %dx%d, want 2x3", l.Rows, l.Cols)
	}
	if l.Layout.Active != 1 {
		t.Errorf("active = %d, want 1", l.Layout.Active)
	}
	if len(l.Layout.Gaps) != 2 || l.Layout.Gaps[0] != 2 || l.Layout.Gaps[1] != 4 {
		t.Errorf("gaps = %v, want [2 4]", l.Layout.Gaps)
	}
	if got := l.Layout.Shapes[3]; got != core.Straight(core.DirBottom) {
		t.Errorf("shape 3 = %s, want Sv", got)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		grid bool
	}{
		{"missing id", "grid: [\"S>\"]", false},
		{"bad token", "id: x\ngrid: [\"S> Q^\"]", false},
		{"row count", "id: x\nrows: 3\ngrid: [\"S> .\"]", true},
		{"ragged", "id: x\ngrid: [\"S> .\", \"S^\"]", true},
		{"not yaml", "id: [", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.grid && !errors.Is(err, ErrGridShape) {
				t.Errorf("expected ErrGridShape, got %v", err)
			}
		})
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	src, err := core.RandomLayout{Seed: 11}.Layout(3, 4)
	if err != nil {
		t.Fatalf("RandomLayout: %v", err)
	}
	in := Layout{ID: "gen", Name: "Generated", Rows: 3, Cols: 4, Layout: src}

	data, err := MarshalYAML(in)
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	out, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, data)
	}

	a, err := core.NewBoard(3, 4, in.Layout, core.BoardOptions{})
	if err != nil {
		t.Fatalf("NewBoard(in): %v", err)
	}
	b, err := core.NewBoard(3, 4, out.Layout, core.BoardOptions{})
	if err != nil {
		t.Fatalf("NewBoard(out): %v", err)
	}

	if len(a.Gaps()) != len(b.Gaps()) {
		t.Fatalf("gaps %v != %v", a.Gaps(), b.Gaps())
	}
	for i := range 12 {
		if a.IsGap(i) != b.IsGap(i) {
			t.Fatalf("gap mismatch at %d", i)
		}
		if !a.IsGap(i) && a.Tile(i).Pipe().Shape() != b.Tile(i).Pipe().Shape() {
			t.Errorf("shape mismatch at %d", i)
		}
	}
}
