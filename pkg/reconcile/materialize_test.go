package reconcile

import (
	"testing"

	"github.com/weft-ui/weft/pkg/memdom"
	"github.com/weft-ui/weft/pkg/vdom"
)

func TestMaterializeText(t *testing.T) {
	doc := memdom.NewDoc()

	node := Materialize(doc, vdom.Text("hello")).(*memdom.Node)

	if !node.IsText() {
		t.Fatal("expected a text node")
	}
	if node.Text() != "hello" {
		t.Errorf("text = %q, want hello", node.Text())
	}
	if node.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", node.ChildCount())
	}
}

func TestMaterializeElementTree(t *testing.T) {
	doc := memdom.NewDoc()

	tree := vdom.New("div", vdom.Props{"className": "card", "id": "main"},
		vdom.New("h1", nil, vdom.Text("Title")),
		vdom.Text("plain"),
	)
	node := Materialize(doc, tree).(*memdom.Node)

	want := `<div class="card" id="main"><h1>Title</h1>plain</div>`
	if got := node.String(); got != want {
		t.Errorf("materialized = %s, want %s", got, want)
	}
}

func TestMaterializeSubscribesEvents(t *testing.T) {
	doc := memdom.NewDoc()

	fired := false
	tree := vdom.New("button", vdom.Props{
		"onClick":   func() { fired = true },
		"className": "btn",
	})
	node := Materialize(doc, tree).(*memdom.Node)

	if _, ok := node.Attr("onClick"); ok {
		t.Error("onClick rendered as an attribute")
	}
	if !node.Dispatch("click", "") {
		t.Fatal("no handler subscribed under the derived event name")
	}
	if !fired {
		t.Error("handler did not fire")
	}
}

func TestMaterializeEventNameDerivation(t *testing.T) {
	tests := []struct {
		prop string
		want string
	}{
		{"onClick", "click"},
		{"onDblClick", "dblclick"},
		{"onMouseEnter", "mouseenter"},
		{"onInput", "input"},
	}
	for _, tt := range tests {
		if got := vdom.EventName(tt.prop); got != tt.want {
			t.Errorf("EventName(%s) = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestMaterializeSkipsForceUpdate(t *testing.T) {
	doc := memdom.NewDoc()

	tree := vdom.New("div", vdom.Props{"forceUpdate": true, "title": "t"})
	node := Materialize(doc, tree).(*memdom.Node)

	if _, ok := node.Attr("forceUpdate"); ok {
		t.Error("forceUpdate rendered as an attribute")
	}
	if v, _ := node.Attr("title"); v != "t" {
		t.Errorf("title = %q, want t", v)
	}
}

func TestMaterializeSkipsNilChildren(t *testing.T) {
	doc := memdom.NewDoc()

	tree := vdom.New("div", nil, nil, vdom.Text("a"), nil)
	node := Materialize(doc, tree).(*memdom.Node)

	if node.ChildCount() != 1 {
		t.Errorf("ChildCount = %d, want 1", node.ChildCount())
	}
}

func TestMaterializeDoesNotMutateVNode(t *testing.T) {
	doc := memdom.NewDoc()

	props := vdom.Props{"className": "x"}
	tree := vdom.New("div", props, vdom.Text("a"))
	Materialize(doc, tree)

	if len(props) != 1 || props["className"] != "x" {
		t.Errorf("props mutated: %v", props)
	}
	if len(tree.Children) != 1 {
		t.Errorf("children mutated: %d entries", len(tree.Children))
	}
}
