//go:build windows

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// windowsSender implements Sender for Windows using PowerShell and the WinRT
// toast APIs
type windowsSender struct {
	config    Config
	logger    *slog.Logger
	available bool
}

// newNativeSender creates a new Windows notification sender
func newNativeSender(cfg Config, logger *slog.Logger) Sender {
	return &windowsSender{
		config:    cfg,
		logger:    logger,
		available: toolAvailable("powershell"),
	}
}

func (s *windowsSender) Name() string { return "windows-toast" }

// Available returns true if PowerShell is available
func (s *windowsSender) Available() bool {
	return s.available
}

// Send shows a ToastGeneric notification through PowerShell
func (s *windowsSender) Send(ctx context.Context, t Toast) error {
	if !s.available {
		return ErrUnavailable
	}
	if s.config.SoundFile != "" {
		s.logger.Debug("custom sound files are not supported by Windows toasts", "path", s.config.SoundFile)
	}

	doc, err := toastXML(t, s.config)
	if err != nil {
		return fmt.Errorf("rendering toast: %w", err)
	}

	cmd := exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-NonInteractive",
		"-Command", powerShellScript(doc, s.config.AppID))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
