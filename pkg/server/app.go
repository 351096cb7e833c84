package server

import (
	"strconv"

	"github.com/weft-ui/weft/pkg/vdom"
)

// CounterApp is the demo application: a per-session counter with
// increment and decrement buttons. Each session gets its own count.
func CounterApp() RenderFunc {
	count := 0
	return func() *vdom.VNode {
		return vdom.Div(vdom.Class("counter"),
			vdom.H1(strconv.Itoa(count)),
			vdom.Button(vdom.OnClick(func() { count++ }), "+"),
			vdom.Button(vdom.OnClick(func() { count-- }), "-"),
		)
	}
}
