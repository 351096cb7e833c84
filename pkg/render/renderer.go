package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/weft-ui/weft/pkg/vdom"
)

// RenderToString renders a VNode tree to an HTML string. Event props
// and the forceUpdate marker are not rendered; className renders as
// class. This is the first-paint companion to live reconciliation: the
// markup it produces is structurally identical to what Materialize
// builds in a live document.
func RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func RenderToWriter(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindElement:
		return renderElement(w, node)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}
	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if err := RenderToWriter(w, child); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// renderAttributes writes the renderable props in sorted attribute
// order for deterministic output.
func renderAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for name := range props {
		if vdom.IsReservedProp(name) {
			continue
		}
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, name := range keys {
		value := attrToString(props[name])
		if _, err := fmt.Fprintf(w, ` %s="%s"`, vdom.AttrName(name), escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

func attrToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
