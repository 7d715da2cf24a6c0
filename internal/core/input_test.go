package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRotate) || !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionRotate)
	f.Set(ActionLeft)
	if !f.Has(ActionRotate) || !f.Has(ActionLeft) || f.Has(ActionUp) {
		t.Errorf("unexpected actions %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear left %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	for _, a := range DirectionalActions {
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
