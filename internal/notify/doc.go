// Package notify displays resolved notification requests on the desktop.
//
// A Dispatcher turns a notification.Request into a Toast by running its
// optional elements through a fixed pipeline (icon, hero image, inline image,
// attribution, protocol activation). An element whose URI does not parse is
// dropped with a warning and the rest of the pipeline still runs. The Toast
// is then handed to a platform Sender; a Sender failure is returned to the
// caller.
//
// # Platform Support
//
//   - Windows: PowerShell with the WinRT ToastGeneric template (all elements)
//   - Linux: org.freedesktop.Notifications over D-Bus, notify-send fallback
//   - macOS: osascript (title, message, attribution as subtitle)
//   - Elsewhere, or with backend "beeep": github.com/gen2brain/beeep
//
// # Usage
//
//	d := notify.NewDispatcher(notify.DefaultConfig(), logger, os.Stderr)
//	err := d.Display(ctx, notification.New("Build", "finished"))
package notify
