//go:build darwin

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// darwinSender implements Sender for macOS using osascript, and afplay for a
// custom sound file
type darwinSender struct {
	config          Config
	logger          *slog.Logger
	visualAvailable bool
	soundAvailable  bool
}

// newNativeSender creates a new macOS notification sender
func newNativeSender(cfg Config, logger *slog.Logger) Sender {
	return &darwinSender{
		config:          cfg,
		logger:          logger,
		visualAvailable: toolAvailable("osascript"),
		soundAvailable:  toolAvailable("afplay"),
	}
}

func (s *darwinSender) Name() string { return "osascript" }

// Available returns true if osascript is available
func (s *darwinSender) Available() bool {
	return s.visualAvailable
}

// Send sends a visual notification using osascript
func (s *darwinSender) Send(ctx context.Context, t Toast) error {
	if !s.visualAvailable {
		return ErrUnavailable
	}
	for _, element := range unsupportedOnDarwin(t) {
		s.logger.Debug("element not supported by osascript notifications", "element", element)
	}

	out, err := exec.CommandContext(ctx, "osascript", "-e", appleScript(t)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}

	s.playSound(ctx)
	return nil
}

// playSound plays the configured sound file with afplay. Failures are logged
// only; the notification has already been shown.
func (s *darwinSender) playSound(ctx context.Context) {
	if s.config.Silent || !s.soundAvailable {
		return
	}
	soundFile := ValidateSoundFile(s.config.SoundFile, s.logger)
	if soundFile == "" {
		return
	}
	if err := exec.CommandContext(ctx, "afplay", soundFile).Run(); err != nil {
		s.logger.Warn("playing sound failed", "path", soundFile, "error", err)
	}
}
