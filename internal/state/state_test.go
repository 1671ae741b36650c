package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	log  *[]string
	name string
}

func (r recordingState) Enter() { *r.log = append(*r.log, r.name+".enter") }
func (r recordingState) Update(float64) { *r.log = append(*r.log, r.name+".update") }
func (r recordingState) Draw(*ebiten.Image) {}
func (r recordingState) Exit() { *r.log = append(*r.log, r.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0) // без состояния ничего не происходит

	sm.SetState(recordingState{log: &log, name: "a"})
	sm.Update(0)
	sm.SetState(recordingState{log: &log, name: "b"})

	want := []string{"a.enter", "a.update", "a.exit", "b.enter"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}
