package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func plainRenderer() *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewRenderer(r)
}

func TestRendererPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorBrightGreen)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	got := plainRenderer().Render(s)
	want := "abcd  \nxyz   "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRendererColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	rend := NewRenderer(r)

	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "ok", core.ColorBrightGreen)

	got := rend.Render(s)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored cells should emit escape codes, got %q", got)
	}
	if !strings.Contains(got, "ok") {
		t.Errorf("text missing from %q", got)
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("default-colored cells should be written unstyled, got %q", got)
	}
}

func TestRendererEveryPaletteColor(t *testing.T) {
	rend := plainRenderer()
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		s := core.NewScreen(1, 1)
		s.SetColor(0, 0, '#', c)
		if got := rend.Render(s); got != "#" {
			t.Errorf("color %d rendered as %q", c, got)
		}
	}
}
