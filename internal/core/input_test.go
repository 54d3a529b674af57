package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateCW)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotateCW, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotateCW) {
		t.Error("Has(RotateCW) should be true")
	}
	if f.Has(ActionDown) {
		t.Error("Has(Down) should be false")
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Errorf("after Clear, Actions() = %v", f.Actions())
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q", ActionRotateCCW.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() for unknown = %q", Action(99).String())
	}
}
