package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '═', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != '═' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset colour, got %+v", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 10, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorYellow)

	if got := s.Row(1)[2:]; !strings.HasPrefix(got, "Héllo") {
		t.Errorf("row 1 = %q", got)
	}
	if c := s.GetCell(3, 1); c.Rune != 'é' || c.Color != ColorYellow {
		t.Errorf("multi-byte rune should occupy one cell, got %+v", c)
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	want := []string{
		" ┌───┐",
		" │   │",
		" │   │",
		" └───┘",
	}
	for i, line := range want {
		if got := strings.TrimRight(s.Row(i+1), " "); got != line {
			t.Errorf("row %d = %q, expected %q", i+1, got, line)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should be coloured")
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5), ColorGray)
	if s.Get(0, 0) != ' ' {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawHLine(0, 2, 5, 'C', ColorRed)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	s.Resize(3, 2)
	if got, want := s.String(), "   \n   "; got != want {
		t.Errorf("after Resize String() = %q, expected %q", got, want)
	}
	if s.Row(-1) != "   " {
		t.Error("out of bounds row should be spaces")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c      Color
		code   string
		bright bool
	}{
		{ColorDefault, "", false},
		{ColorRed, "1", false},
		{ColorGray, "245", false},
		{ColorBrightRed, "9", true},
		{ColorBrightCyan, "14", true},
		{Color(99), "", false},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.code {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.code)
		}
		if got := tt.c.Bright(); got != tt.bright {
			t.Errorf("Color(%d).Bright() = %v, want %v", tt.c, got, tt.bright)
		}
	}
}
