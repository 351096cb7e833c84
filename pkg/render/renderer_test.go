package render

import (
	"strings"
	"testing"

	"github.com/weft-ui/weft/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	html, err := RenderToString(vdom.Text("hello"))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if html != "hello" {
		t.Errorf("html = %q, want hello", html)
	}
}

func TestRenderEscapesText(t *testing.T) {
	html, err := RenderToString(vdom.Text(`<script>alert("x")</script>`))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("unescaped markup in output: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped entities, got %s", html)
	}
}

func TestRenderElementTree(t *testing.T) {
	tree := vdom.Div(vdom.Class("card"), vdom.ID("main"),
		vdom.H1("Title"),
		vdom.P("Content"),
	)
	html, err := RenderToString(tree)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want := `<div class="card" id="main"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("html = %s, want %s", html, want)
	}
}

func TestRenderSkipsReservedProps(t *testing.T) {
	tree := vdom.New("button", vdom.Props{
		"onClick":     func() {},
		"forceUpdate": true,
		"title":       "go",
	})
	html, err := RenderToString(tree)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if strings.Contains(html, "onClick") || strings.Contains(html, "forceUpdate") {
		t.Errorf("reserved props rendered: %s", html)
	}
	if !strings.Contains(html, `title="go"`) {
		t.Errorf("title missing: %s", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	html, err := RenderToString(vdom.Img(vdom.Src("/x.png"), vdom.Alt("x")))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want := `<img alt="x" src="/x.png"/>`
	if html != want {
		t.Errorf("html = %s, want %s", html, want)
	}
}

func TestRenderEscapesAttrValues(t *testing.T) {
	html, err := RenderToString(vdom.Div(vdom.TitleAttr(`a"b`)))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if !strings.Contains(html, `title="a&quot;b"`) {
		t.Errorf("attr not escaped: %s", html)
	}
}

func TestRenderNilIsEmpty(t *testing.T) {
	html, err := RenderToString(nil)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if html != "" {
		t.Errorf("html = %q, want empty", html)
	}
}

func TestRenderSkipsNilChildren(t *testing.T) {
	html, err := RenderToString(vdom.New("div", nil, nil, vdom.Text("a")))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if html != "<div>a</div>" {
		t.Errorf("html = %q, want <div>a</div>", html)
	}
}
