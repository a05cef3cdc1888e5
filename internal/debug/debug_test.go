package debug

import "testing"

func TestLines(t *testing.T) {
	o := New(false)
	if got := o.Lines(); len(got) != 0 {
		t.Fatalf("hidden overlay lines = %v", got)
	}
	o = New(true)
	o.SetFinish("Tile: Modern Gray")
	got := o.Lines()
	if len(got) != 2 || got[1] != "Tile: Modern Gray" {
		t.Errorf("lines = %q", got)
	}
	o.ShowMem = true
	if got := o.Lines(); len(got) != 3 {
		t.Errorf("with mem: %d lines", len(got))
	}
}
