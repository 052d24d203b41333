package notify

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Sender defines the interface for platform-specific notification senders
type Sender interface {
	// Name identifies the sender in logs and errors
	Name() string

	// Send delivers a toast to the OS notification system
	Send(ctx context.Context, t Toast) error

	// Available returns true if the sender can reach a notification surface
	Available() bool
}

// NewSender creates the sender selected by cfg.Backend.
// With BackendAuto the platform's native sender is preferred and beeep is
// used when the native one is missing or unavailable.
func NewSender(cfg Config, logger *slog.Logger) Sender {
	if cfg.Backend == BackendBeeep {
		return newBeeepSender(cfg)
	}

	native := newNativeSender(cfg, logger)
	if native == nil {
		if cfg.Backend == BackendNative {
			return unavailableSender{name: Platform()}
		}
		return newBeeepSender(cfg)
	}
	if cfg.Backend == BackendAuto && !native.Available() {
		logger.Debug("native sender unavailable, falling back to beeep", "sender", native.Name())
		return newBeeepSender(cfg)
	}
	return native
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// unavailableSender stands in for a native sender on platforms that have none
type unavailableSender struct {
	name string
}

func (s unavailableSender) Name() string                      { return s.name }
func (s unavailableSender) Send(context.Context, Toast) error { return ErrUnavailable }
func (s unavailableSender) Available() bool                   { return false }

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks if the sound file exists and has a supported format.
// Returns the validated path to use (original if valid, or empty for no custom sound).
// If the file is invalid, logs a warning and returns empty string.
func ValidateSoundFile(soundFile string, logger *slog.Logger) string {
	if soundFile == "" {
		return ""
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("custom sound file not found", "path", soundFile)
		} else {
			logger.Warn("cannot access custom sound file", "path", soundFile, "error", err)
		}
		return ""
	}

	if info.IsDir() {
		logger.Warn("sound path is a directory, not a file", "path", soundFile)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		logger.Warn("unsupported audio format", "extension", ext, "path", soundFile)
		return ""
	}

	return soundFile
}
