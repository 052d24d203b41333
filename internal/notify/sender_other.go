//go:build !darwin && !linux && !windows

package notify

import "log/slog"

// newNativeSender returns nil: there is no native sender on this platform
func newNativeSender(Config, *slog.Logger) Sender {
	return nil
}
