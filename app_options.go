package tuikit

import "errors"

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithKeymap replaces the default key bindings. Text editing keys of a
// focused TextField are not affected.
func WithKeymap(k *Keymap) AppOption {
	return func(a *App) error {
		if k == nil {
			return errors.New("tuikit: nil keymap")
		}
		a.keymap = k
		return nil
	}
}

// WithCollectText adds the non-empty contents of every TextField to the
// collected output, interleaved with checked checkbox labels in document
// order. Off by default.
func WithCollectText(enabled bool) AppOption {
	return func(a *App) error {
		a.collectText = enabled
		return nil
	}
}
