package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog/log"

	"github.com/username/goviet-ime/internal/engine"
	"github.com/username/goviet-ime/internal/hostapi"
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	session *hostapi.Session
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine() *InputEngine {
	return &InputEngine{session: hostapi.NewSession()}
}

// ProcessKey handles key events from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt/CapsLock state).
// Output: handled (was the key consumed), commitText (text to commit),
// preeditText (the current composition).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	key := keysymToKeycode(keysym)
	shift := modifiers&modShift != 0
	caps := modifiers&modLock != 0
	ctrl := modifiers&modControl != 0
	alt := modifiers&modMod1 != 0
	cmd := modifiers&modMod4 != 0

	result := e.session.ProcessKey(key, shift, caps, ctrl, alt, cmd)

	handled := result.Action != engine.ActionNone
	return handled, result.String(), e.session.Host.Preedit(), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.session.Host.Reset()
	log.Info().Str("session_id", e.session.ID).Msg("engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.session.Host.SetEnabled(enabled)
	log.Info().Bool("enabled", enabled).Msg("engine enabled state changed")
	return nil
}

// SetMethod switches between Telex ("telex") and VNI ("vni").
func (e *InputEngine) SetMethod(method string) *dbus.Error {
	m := engine.MethodTelex
	if method == "vni" {
		m = engine.MethodVNI
	}
	e.session.Host.SetMethod(m)
	log.Info().Str("method", method).Msg("input method changed")
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.session.Host.Preedit(), nil
}

// GetVersion returns the running build's version string.
func (e *InputEngine) GetVersion() (string, *dbus.Error) {
	return engine.GetVersion(), nil
}

func main() {
	cfg := hostapi.Load()
	hostapi.InitLogging(cfg.LogLevel)

	conn, err := dbus.SessionBus()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session bus")
	}
	defer conn.Close()

	reply, err := conn.RequestName(cfg.DBusServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to request bus name")
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		log.Fatal().Str("service", cfg.DBusServiceName).Msg("bus name already taken, another instance may be running")
	}

	inputEngine := NewInputEngine()
	if err := conn.Export(inputEngine, dbus.ObjectPath(cfg.DBusObjectPath), cfg.DBusServiceName); err != nil {
		log.Fatal().Err(err).Msg("failed to export D-Bus object")
	}

	log.Info().
		Str("service", cfg.DBusServiceName).
		Str("object_path", cfg.DBusObjectPath).
		Str("version", engine.GetVersion()).
		Msg("goviet-ime daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
}
