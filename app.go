package tuikit

import (
	"errors"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// runState is the position of the App in its input/redraw cycle.
type runState uint8

const (
	stateAwaitingRedraw runState = iota
	stateRendering
	stateAwaitingInput
	stateDispatching
	stateTerminated
)

func (s runState) String() string {
	switch s {
	case stateAwaitingRedraw:
		return "awaiting-redraw"
	case stateRendering:
		return "rendering"
	case stateAwaitingInput:
		return "awaiting-input"
	case stateDispatching:
		return "dispatching"
	case stateTerminated:
		return "terminated"
	}
	return "unknown"
}

// App owns a widget tree for the duration of one interaction: the focus
// position, the dirty flag and the backend it draws to. It is strictly
// single-threaded; the only blocking call is Backend.ReadEvent.
type App struct {
	root        *Container
	backend     Backend
	focus       *FocusManager
	keymap      *Keymap
	collectText bool
	dirty       bool
	state       runState
}

// NewApp takes ownership of root. The tree is frozen: later Container.Add
// calls are ignored.
func NewApp(root *Container, backend Backend, opts ...AppOption) (*App, error) {
	if root == nil {
		return nil, errors.New("tuikit: nil root container")
	}
	if backend == nil {
		return nil, errors.New("tuikit: nil backend")
	}

	app := &App{
		root:    root,
		backend: backend,
		focus:   NewFocusManager(root),
		keymap:  DefaultKeymap(),
		dirty:   true,
		state:   stateAwaitingRedraw,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	root.freeze()
	return app, nil
}

// Run draws the tree to backend, processes keys until the exit key, and
// returns the labels of the checked checkboxes (plus text field contents when
// WithCollectText is set) in document order.
func Run(root *Container, backend Backend, opts ...AppOption) ([]string, error) {
	app, err := NewApp(root, backend, opts...)
	if err != nil {
		return nil, err
	}
	return app.Run()
}

// Run executes the interaction. Raw mode is entered once and left on every
// return path. Any backend failure aborts the loop and is returned as an
// *IOError; if leaving raw mode also fails in that case, the original error
// is returned and the second failure is only logged.
func (a *App) Run() (out []string, err error) {
	if a.state == stateTerminated {
		return a.Output(), nil
	}
	if err := a.backend.EnterRawMode(); err != nil {
		debug.Log("App.Run: enter raw mode failed: %v", err)
		return nil, wrapIO("enter raw mode", err)
	}
	defer func() {
		exitErr := a.backend.ExitRawMode()
		if exitErr == nil {
			return
		}
		if err != nil {
			debug.Log("App.Run: exit raw mode after %v: %v", err, exitErr)
			return
		}
		out, err = nil, wrapIO("exit raw mode", exitErr)
	}()

	for {
		if a.dirty {
			a.setState(stateRendering)
			if err := a.redraw(); err != nil {
				return nil, err
			}
		}

		a.setState(stateAwaitingInput)
		ev, err := a.backend.ReadEvent()
		if err != nil {
			debug.Log("App.Run: read failed: %v", err)
			return nil, wrapIO("read event", err)
		}

		a.setState(stateDispatching)
		if a.HandleEvent(ev) {
			break
		}
		a.setState(stateAwaitingRedraw)
	}

	return a.Output(), nil
}

// HandleEvent processes one input event without touching the backend. It
// returns true when the event terminates the interaction. Key events other
// than presses and non-key events are ignored.
func (a *App) HandleEvent(ev Event) (terminate bool) {
	if a.state == stateTerminated {
		return true
	}

	key, ok := ev.(KeyEvent)
	if !ok {
		debug.Log("App.HandleEvent: ignoring %s", describeEvent(ev))
		return false
	}

	_, textFocused := a.focus.Focused().(*TextField)
	action := a.keymap.Translate(key, textFocused)
	debug.Log("App.HandleEvent: %s -> %s", describeEvent(ev), action)

	switch action.Kind {
	case ActionNone:
		return false
	case ActionTerminate:
		a.setState(stateTerminated)
		return true
	}

	if Dispatch(a.focus, action) {
		a.dirty = true
	}
	return false
}

// redraw clears the display, writes every line and clears the dirty flag.
func (a *App) redraw() error {
	if err := a.backend.Clear(); err != nil {
		return wrapIO("clear", err)
	}
	for _, line := range a.Lines() {
		if err := a.backend.WriteLine(line); err != nil {
			return wrapIO("write line", err)
		}
	}
	if err := a.backend.Flush(); err != nil {
		return wrapIO("flush", err)
	}
	a.dirty = false
	return nil
}

func (a *App) setState(s runState) {
	if a.state == s {
		return
	}
	debug.Log("App: %s -> %s", a.state, s)
	a.state = s
}

// Lines renders the tree as it currently stands.
func (a *App) Lines() []string {
	return RenderLines(a.root, a.focus.Index())
}

// Output computes the collected output from the current widget state.
func (a *App) Output() []string {
	return selected(a.root.Values(a.collectText))
}

// Values returns every leaf value, including unchecked checkboxes and
// slider positions.
func (a *App) Values() []Value {
	return a.root.Values(a.collectText)
}

// Focus returns the focus manager.
func (a *App) Focus() *FocusManager {
	return a.focus
}

// Dirty reports whether the display is stale.
func (a *App) Dirty() bool {
	return a.dirty
}

// Terminated reports whether the exit key has been processed.
func (a *App) Terminated() bool {
	return a.state == stateTerminated
}
