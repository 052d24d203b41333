package notify

import (
	"errors"
	"net/url"
)

// Backend selects which Sender delivers notifications.
type Backend string

const (
	// BackendAuto uses the native sender when it is available, beeep otherwise
	BackendAuto Backend = "auto"
	// BackendNative always uses the platform's native sender
	BackendNative Backend = "native"
	// BackendBeeep always uses the cross-platform beeep sender
	BackendBeeep Backend = "beeep"
)

// ValidBackend checks if the given string is a valid backend
func ValidBackend(s string) bool {
	switch Backend(s) {
	case BackendAuto, BackendNative, BackendBeeep:
		return true
	default:
		return false
	}
}

var (
	// ErrUnavailable is returned when the selected sender cannot reach a
	// notification surface on this machine.
	ErrUnavailable = errors.New("notification surface unavailable")

	// ErrInvalidURI marks an element whose value is not an absolute URI or
	// absolute file path.
	ErrInvalidURI = errors.New("not a valid URI")
)

// Config holds delivery settings that apply to every notification.
type Config struct {
	// AppID is the application identity shown by the OS
	AppID string

	// Backend selects the sender: auto, native or beeep
	Backend Backend

	// Silent suppresses the notification sound where the platform allows it
	Silent bool

	// SoundFile is an optional custom sound file path
	SoundFile string

	// ExpireTimeout in milliseconds; freedesktop servers only. -1 lets the server decide.
	ExpireTimeout int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		AppID:         "wintoast",
		Backend:       BackendAuto,
		Silent:        false,
		SoundFile:     "",
		ExpireTimeout: -1,
	}
}

// Toast is a notification ready for a Sender: every URI element has been
// validated and resolved, and nil means the element is not shown.
type Toast struct {
	Title   string
	Message string

	Icon        *url.URL
	HeroImage   *url.URL
	InlineImage *url.URL
	Attribution string
	Activation  *url.URL
}
