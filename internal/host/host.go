// Package host embeds a JavaScript runtime that exposes metadata records as
// MediaMetadata objects and the host's session as navigator.mediaSession.
package host

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/famomatic/nowplaying/metadata"
	"github.com/famomatic/nowplaying/session"
)

// Config configures a Host.
type Config struct {
	// Registry is the lookup table the host's session is opened in.
	// If nil, a private registry is created from Session.
	Registry *session.Registry

	// Session is used only when Registry is nil.
	Session session.Config

	// Logger receives console output from scripts.
	// If nil, console output is discarded.
	Logger session.Logger
}

// Host is one scripting context bound to one media session.
// It is not safe for concurrent use.
type Host struct {
	vm      *goja.Runtime
	session *session.Session
	logger  session.Logger

	ctor      *goja.Object
	recordKey *goja.Symbol
	// objects maps records to the MediaMetadata object exposing them.
	objects map[*metadata.Record]*goja.Object
	closed  bool
}

// New creates a Host and opens its session.
func New(cfg Config) (*Host, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = session.NewRegistry(cfg.Session)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	h := &Host{
		vm:        goja.New(),
		logger:    logger,
		recordKey: goja.NewSymbol("MediaMetadata.record"),
		objects:   make(map[*metadata.Record]*goja.Object),
	}
	h.session = registry.Open()

	if err := h.install(); err != nil {
		h.session.Close()
		return nil, fmt.Errorf("install host bindings: %w", err)
	}
	return h, nil
}

// Session returns the session scripts manipulate through navigator.mediaSession.
func (h *Host) Session() *session.Session {
	return h.session
}

// RunScript runs src under name.
func (h *Host) RunScript(name, src string) error {
	return h.RunScriptContext(context.Background(), name, src)
}

// RunScriptContext runs src under name, interrupting it when ctx is done.
func (h *Host) RunScriptContext(ctx context.Context, name, src string) error {
	if h.closed {
		return ErrHostClosed
	}
	done := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(done)
		h.vm.Interrupt(ctx.Err())
	})
	defer func() {
		// A callback that already started must land its interrupt before
		// it is cleared, or the next script inherits it.
		if !stop() {
			<-done
		}
		h.vm.ClearInterrupt()
	}()

	if _, err := h.vm.RunScript(name, src); err != nil {
		return &ScriptError{Name: name, Err: err}
	}
	return nil
}

// Eval evaluates an expression and returns its value.
func (h *Host) Eval(src string) (goja.Value, error) {
	if h.closed {
		return nil, ErrHostClosed
	}
	return h.vm.RunString(src)
}

// Set defines a global visible to scripts.
func (h *Host) Set(name string, v any) error {
	if h.closed {
		return ErrHostClosed
	}
	return h.vm.Set(name, v)
}

// NewMetadata constructs a MediaMetadata object from Go. The record is not
// attached to any session.
func (h *Host) NewMetadata(init metadata.Init) (*goja.Object, *metadata.Record, error) {
	if h.closed {
		return nil, nil, ErrHostClosed
	}
	arg := h.vm.ToValue(map[string]any{
		"title":  init.Title,
		"artist": init.Artist,
		"album":  init.Album,
	})
	obj, err := h.vm.New(h.ctor, arg)
	if err != nil {
		return nil, nil, err
	}
	return obj, h.recordOf(obj), nil
}

// SetMetadata makes obj the session's active metadata, as if a script
// assigned navigator.mediaSession.metadata. A nil obj clears it.
func (h *Host) SetMetadata(obj *goja.Object) error {
	if h.closed {
		return ErrHostClosed
	}
	if obj == nil {
		h.session.SetMetadata(nil)
		return nil
	}
	rec := h.recordOf(obj)
	if rec == nil {
		return errors.New("object is not a MediaMetadata")
	}
	h.session.SetMetadata(rec)
	return nil
}

// Close closes the host's session. Records attached to it stop notifying.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.session.Close()
}

func (h *Host) install() error {
	h.ctor = h.vm.ToValue(h.construct).(*goja.Object)
	if err := h.vm.Set("MediaMetadata", h.ctor); err != nil {
		return err
	}

	mediaSession := h.vm.NewObject()
	if err := mediaSession.DefineAccessorProperty("metadata",
		h.vm.ToValue(h.getSessionMetadata),
		h.vm.ToValue(h.setSessionMetadata),
		goja.FLAG_FALSE, goja.FLAG_TRUE); err != nil {
		return err
	}
	navigator := h.vm.NewObject()
	if err := navigator.Set("mediaSession", mediaSession); err != nil {
		return err
	}
	if err := h.vm.Set("navigator", navigator); err != nil {
		return err
	}

	console := h.vm.NewObject()
	for _, name := range []string{"log", "info", "debug"} {
		if err := console.Set(name, h.consoleFunc(h.logger.Debugf)); err != nil {
			return err
		}
	}
	for _, name := range []string{"warn", "error"} {
		if err := console.Set(name, h.consoleFunc(h.logger.Warnf)); err != nil {
			return err
		}
	}
	if err := h.vm.Set("console", console); err != nil {
		return err
	}

	_, err := h.vm.RunString(preludeJS)
	return err
}

// getSessionMetadata follows the session, so records activated from Go
// or moved to another session are reflected.
func (h *Host) getSessionMetadata(goja.FunctionCall) goja.Value {
	rec := h.session.Metadata()
	if rec == nil {
		return goja.Null()
	}
	obj, err := h.objectFor(rec)
	if err != nil {
		panic(h.vm.NewGoError(err))
	}
	return obj
}

func (h *Host) setSessionMetadata(call goja.FunctionCall) goja.Value {
	v := call.Argument(0)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		h.session.SetMetadata(nil)
		return goja.Undefined()
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		panic(h.vm.NewTypeError("Failed to set 'metadata' on 'MediaSession': value is not of type 'MediaMetadata'"))
	}
	rec := h.recordOf(obj)
	if rec == nil {
		panic(h.vm.NewTypeError("Failed to set 'metadata' on 'MediaSession': value is not of type 'MediaMetadata'"))
	}
	h.session.SetMetadata(rec)
	return goja.Undefined()
}

func (h *Host) consoleFunc(logf func(string, ...any)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		logf("console: %s", strings.Join(parts, " "))
		return goja.Undefined()
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}
