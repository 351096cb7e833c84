package vdom

import "testing"

func TestTextf(t *testing.T) {
	node := Textf("%d items", 3)
	if node.Text != "3 items" {
		t.Errorf("Text = %q, want 3 items", node.Text)
	}
}

func TestIf(t *testing.T) {
	node := Span()
	if If(true, node) != node {
		t.Error("If(true) did not return node")
	}
	if If(false, node) != nil {
		t.Error("If(false) did not return nil")
	}
}

func TestIfElse(t *testing.T) {
	a, b := Span(), Div()
	if IfElse(true, a, b) != a {
		t.Error("IfElse(true) != first")
	}
	if IfElse(false, a, b) != b {
		t.Error("IfElse(false) != second")
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	When(false, func() *VNode {
		called = true
		return Span()
	})
	if called {
		t.Error("When(false) evaluated its function")
	}
	if When(true, func() *VNode { return Span() }) == nil {
		t.Error("When(true) returned nil")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "b", "c"}, func(s string, i int) *VNode {
		if s == "b" {
			return nil
		}
		return Li(Text(s))
	})
	if len(nodes) != 2 {
		t.Errorf("len = %d, want 2", len(nodes))
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(3, func(i int) *VNode { return Li(Textf("%d", i)) })
	if len(nodes) != 3 {
		t.Errorf("len = %d, want 3", len(nodes))
	}
	if Repeat(0, func(i int) *VNode { return nil }) != nil {
		t.Error("Repeat(0) != nil")
	}
}
