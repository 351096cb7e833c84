package reconcile

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// SetProperty sets a single VNode property as an attribute on a live
// node. Event props and the forceUpdate marker are never rendered, so
// the call is a no-op for them; className sets the "class" attribute.
func SetProperty(target dom.Node, name string, value any) {
	if vdom.IsReservedProp(name) {
		return
	}
	target.SetAttribute(vdom.AttrName(name), propToString(value))
}

// RemoveProperty removes a single VNode property's attribute from a
// live node. The old value is accepted for symmetry with SetProperty
// but is not needed to remove. No-op for reserved props.
func RemoveProperty(target dom.Node, name string, _ any) {
	if vdom.IsReservedProp(name) {
		return
	}
	target.RemoveAttribute(vdom.AttrName(name))
}

// diffProperty applies the minimal mutation for one property. Under the
// default policy any falsy new value (nil, "", 0, false) removes the
// attribute rather than setting it; Policy.SetFalsyValues narrows
// removal to nil only.
func (r *Reconciler) diffProperty(target dom.Node, name string, newValue, oldValue any) {
	removes := isFalsy(newValue)
	if r.Policy.SetFalsyValues {
		removes = newValue == nil
	}
	if removes {
		RemoveProperty(target, name, oldValue)
		return
	}
	if oldValue == nil || !propsEqual(newValue, oldValue) {
		SetProperty(target, name, newValue)
	}
}

// ReconcileProperties moves a live node's attribute set from oldProps
// to newProps, issuing only the mutations the difference requires. A
// nil oldProps reconciles from an empty set.
//
// Event handler identity is not re-applied here by default: only
// materialization subscribes handlers, so a handler changed between
// trees keeps its original subscription. Policy.ResubscribeHandlers
// opts into replacing changed handlers during reconciliation.
func (r *Reconciler) ReconcileProperties(target dom.Node, newProps, oldProps vdom.Props) {
	for name, newValue := range newProps {
		if vdom.IsEventProp(name) && r.Policy.ResubscribeHandlers {
			oldValue, had := oldProps[name]
			if !had || !propsEqual(newValue, oldValue) {
				event := vdom.EventName(name)
				if had {
					target.RemoveEventListener(event)
				}
				target.AddEventListener(event, newValue)
			}
			continue
		}
		r.diffProperty(target, name, newValue, oldProps[name])
	}
	for name, oldValue := range oldProps {
		if _, exists := newProps[name]; exists {
			continue
		}
		if vdom.IsEventProp(name) && r.Policy.ResubscribeHandlers {
			target.RemoveEventListener(vdom.EventName(name))
			continue
		}
		r.diffProperty(target, name, nil, oldValue)
	}
}

// isFalsy reports whether a property value counts as unset under the
// default removal policy.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	default:
		return false
	}
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Funcs are not comparable with ==, and DeepEqual calls any two
	// non-nil funcs unequal. Compare code pointers instead, so passing
	// the same tree (or the same handler) twice compares equal and a
	// resubscribing reconcile pass stays idempotent.
	av := reflect.ValueOf(a)
	if av.Kind() == reflect.Func {
		bv := reflect.ValueOf(b)
		return bv.Kind() == reflect.Func && av.Pointer() == bv.Pointer()
	}
	// Fallback to reflect for complex types.
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to its attribute string.
func propToString(v any) string {
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
