package flicker

import (
	"errors"
	"fmt"
)

// ErrNoTextures is reported when an emitter spawns with an empty texture set.
var ErrNoTextures = errors.New("emitter has no textures")

// ConfigError reports a caller contract violation in emitter or scene
// configuration. It is not a recoverable runtime state.
type ConfigError struct {
	Emitter string // pool name of the offending emitter, if any
	Field   string
	Reason  string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Emitter != "" && e.Field != "":
		return fmt.Sprintf("flicker: emitter %q: %s: %s", e.Emitter, e.Field, msg)
	case e.Field != "":
		return fmt.Sprintf("flicker: %s: %s", e.Field, msg)
	default:
		return "flicker: " + msg
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
