package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("pacman"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
	if Exists("pacman") {
		t.Error("Exists() of unknown id should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "has a summary" }

func TestListCarriesDescription(t *testing.T) {
	Register("zz_described", func() Game { return &describedGame{stubGame{id: "zz_described"}} })

	info, ok := Lookup("zz_described")
	if !ok {
		t.Fatal("Lookup() should find the registered game")
	}
	if info.Description != "has a summary" {
		t.Errorf("Description = %q", info.Description)
	}

	plain, _ := Lookup("zz_stub_plain")
	if plain.Description != "" {
		t.Errorf("unregistered id should have empty info, got %+v", plain)
	}
}

func TestCreateUnknownWrapsSentinel(t *testing.T) {
	_, err := Create("tetris")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
}
