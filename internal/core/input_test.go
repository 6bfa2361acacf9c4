package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPrimary) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionPrimary)
	f.Set(ActionLeft)
	if !f.Has(ActionPrimary) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPrimary) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionProcess.String() != "Process" {
		t.Errorf("ActionProcess.String() = %q", ActionProcess.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
