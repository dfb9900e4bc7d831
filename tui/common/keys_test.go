package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.Quit.Keys()) == 0 || km.Quit.Keys()[0] != "q" {
		t.Fatalf("expected q quit binding")
	}
	if len(km.Parent.Keys()) == 0 || km.Parent.Keys()[0] != "u" {
		t.Fatalf("expected u parent binding")
	}
	if len(km.NextPage.Keys()) < 2 || km.NextPage.Keys()[1] != "right" {
		t.Fatalf("expected arrow fallback on page bindings")
	}
}
