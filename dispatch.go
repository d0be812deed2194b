package tuikit

import "github.com/grindlemire/go-tuikit/internal/debug"

// Dispatch routes a semantic action. Focus actions move the focus manager;
// every other action except terminate goes to the focused leaf of the
// re-flattened tree. It reports whether the action had an effect, which is
// what decides whether a redraw is needed.
func Dispatch(focus *FocusManager, a Action) bool {
	switch {
	case a.Kind == ActionNone, a.Kind == ActionTerminate:
		return false
	case a.Kind == ActionAdvanceFocus:
		return focus.Next()
	case a.Kind == ActionRetreatFocus:
		return focus.Prev()
	}

	target := focus.Focused()
	if target == nil {
		debug.Log("Dispatch: %s with no focusable leaf", a)
		return false
	}
	handled := applyAction(target, a)
	debug.Log("Dispatch: %s -> %T at %d handled=%v", a, target, focus.Index(), handled)
	return handled
}
