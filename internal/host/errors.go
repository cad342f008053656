package host

import (
	"errors"
	"fmt"
)

// ErrHostClosed is returned by operations on a closed Host.
var ErrHostClosed = errors.New("host closed")

// ScriptError wraps a failure raised while running a named script.
type ScriptError struct {
	Name string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Name, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }
