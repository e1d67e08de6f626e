package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	title string
	lives int
}

func (s *stubGame) ID() string { return "stub" }
func (s *stubGame) Title() string { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(s Settings) Game {
		return &stubGame{title: "Stub", lives: s.Config.Player.MaxLives}
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub")
			}
		}
	}
	if !found {
		t.Error("List() does not contain zz_stub")
	}

	var s Settings
	s.Config.Player.MaxLives = 4
	g, err := Create("zz_stub", s)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := g.(*stubGame).lives; got != 4 {
		t.Errorf("settings not passed to factory: lives = %d", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func(Settings) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func(Settings) Game { return &stubGame{} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist", Settings{})
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}
