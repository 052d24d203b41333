//go:build linux

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"
)

// linuxSender implements Sender over the org.freedesktop.Notifications
// D-Bus interface, falling back to notify-send when the session bus cannot
// be reached.
type linuxSender struct {
	config Config
	logger *slog.Logger
}

// newNativeSender creates a new Linux notification sender
func newNativeSender(cfg Config, logger *slog.Logger) Sender {
	return &linuxSender{config: cfg, logger: logger}
}

func (s *linuxSender) Name() string { return "freedesktop" }

// Available returns true when a desktop session is present
func (s *linuxSender) Available() bool {
	return hasDisplay() || os.Getenv("DBUS_SESSION_BUS_ADDRESS") != ""
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	// Check for X11 display
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	// Check for Wayland display
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

func (s *linuxSender) Send(ctx context.Context, t Toast) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		if toolAvailable("notify-send") {
			s.logger.Debug("session bus unreachable, using notify-send", "error", err)
			return s.sendNotifySend(ctx, t)
		}
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(fdoDestination, fdoPath)

	var names []string
	if err := obj.CallWithContext(ctx, fdoGetCaps, 0).Store(&names); err != nil {
		s.logger.Debug("GetCapabilities failed, assuming plain text server", "error", err)
	}

	p := renderFreedesktop(t, newCapabilities(names), s.config, ValidateSoundFile(s.config.SoundFile, s.logger))
	for _, element := range p.Skipped {
		s.logger.Debug("element not supported by notification server", "element", element)
	}

	call := obj.CallWithContext(ctx, fdoNotify, 0,
		s.config.AppID,                // app_name
		uint32(0),                     // replaces_id
		p.AppIcon,                     // app_icon
		p.Summary,                     // summary
		p.Body,                        // body
		[]string{},                    // actions
		p.Hints,                       // hints
		int32(s.config.ExpireTimeout), // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("org.freedesktop.Notifications.Notify: %w", call.Err)
	}
	return nil
}

// sendNotifySend sends a plain-text notification using notify-send
func (s *linuxSender) sendNotifySend(ctx context.Context, t Toast) error {
	cmd := exec.CommandContext(ctx, "notify-send", notifySendArgs(t, s.config)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("notify-send: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func notifySendArgs(t Toast, cfg Config) []string {
	argv := []string{"-a", cfg.AppID}
	if path, ok := localPath(t.Icon); ok {
		argv = append(argv, "-i", path)
	}
	if path, ok := localPath(t.HeroImage); ok {
		argv = append(argv, "-h", "string:image-path:"+path)
	}
	if cfg.ExpireTimeout >= 0 {
		argv = append(argv, "-t", strconv.Itoa(cfg.ExpireTimeout))
	}
	body := t.Message
	if t.Attribution != "" {
		body = strings.TrimPrefix(body+"\n"+t.Attribution, "\n")
	}
	return append(argv, "--", t.Title, body)
}
