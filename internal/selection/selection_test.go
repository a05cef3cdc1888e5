package selection

import (
	"testing"

	"tile-configurator/internal/finish"
)

func TestNewStartsWithFirstEntry(t *testing.T) {
	s, err := New(finish.Default())
	if err != nil {
		t.Fatal(err)
	}
	if s.CurrentID() != 1 || s.Current().Name != "Classic White" {
		t.Errorf("Current() = %+v, want Classic White", s.Current())
	}
}

func TestNewEmptyCatalog(t *testing.T) {
	c, err := finish.NewCatalog(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(c); err == nil {
		t.Error("New(empty) returned no error")
	}
}

func TestSelectNotifiesInOrder(t *testing.T) {
	c := finish.Default()
	s, _ := New(c)
	var calls []string
	s.Subscribe(func(prev, next finish.Option) {
		calls = append(calls, "a:"+prev.Name+">"+next.Name)
	})
	s.Subscribe(func(prev, next finish.Option) {
		if s.CurrentID() != next.ID {
			t.Errorf("listener saw stale state %d, want %d", s.CurrentID(), next.ID)
		}
		calls = append(calls, "b")
	})
	gray, _ := c.ByID(3)
	s.Select(gray)
	if s.CurrentID() != 3 {
		t.Fatalf("CurrentID() = %d, want 3", s.CurrentID())
	}
	want := []string{"a:Classic White>Modern Gray", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestSelectSameFinishTwice(t *testing.T) {
	c := finish.Default()
	s, _ := New(c)
	n := 0
	s.Subscribe(func(_, _ finish.Option) { n++ })
	brown, _ := c.ByID(2)
	s.Select(brown)
	s.Select(brown)
	if n != 2 {
		t.Errorf("listener ran %d times, want 2", n)
	}
	if s.Current() != brown {
		t.Errorf("Current() = %+v, want %+v", s.Current(), brown)
	}
}
