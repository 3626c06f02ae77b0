package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height = %d, want 5", s.Height())
	}

	// All cells should be spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("cell (%d,%d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3,2) = %q, want #", s.Get(3, 2))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	// Out of bounds reads return space
	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(2, 1, '@', ColorRed)

	cell := s.GetCell(2, 1)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, want @", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %d, want ColorRed", cell.Color)
	}

	// Plain Set uses default color
	s.Set(2, 1, '*')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}

	// Out-of-bounds GetCell returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Error("out-of-bounds GetCell should return blank default cell")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", got, "  hello   ")
	}

	// Clipping at the right edge
	s.DrawText(7, 0, "world")
	if got := s.Row(0); got != "       wor" {
		t.Errorf("Row(0) = %q, want %q", got, "       wor")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(0, 0, "ab", ColorCyan)

	if s.GetCell(0, 0).Color != ColorCyan || s.GetCell(1, 0).Color != ColorCyan {
		t.Error("DrawTextColored should color every cell it writes")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")

	if got := strings.TrimRight(s.Row(1), " "); got != "    abc" {
		t.Errorf("centered row = %q, want %q", got, "    abc")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, 'A')
	s.Set(5, 2, 'B')

	s.Resize(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size after resize = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("resize should preserve in-range content")
	}
	// (5,2) was clipped away
	if s.Get(5, 2) != ' ' {
		t.Error("clipped content should read as space")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
