package notify

import (
	"html"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	fdoDestination = "org.freedesktop.Notifications"
	fdoPath        = dbus.ObjectPath("/org/freedesktop/Notifications")
	fdoNotify      = fdoDestination + ".Notify"
	fdoGetCaps     = fdoDestination + ".GetCapabilities"
)

// capabilities is the set reported by org.freedesktop.Notifications.GetCapabilities.
type capabilities map[string]bool

func newCapabilities(names []string) capabilities {
	caps := make(capabilities, len(names))
	for _, n := range names {
		caps[n] = true
	}
	return caps
}

// fdoPayload is the argument set of a single Notify call.
type fdoPayload struct {
	AppIcon string
	Summary string
	Body    string
	Hints   map[string]dbus.Variant

	// Skipped names elements this server cannot show.
	Skipped []string
}

// renderFreedesktop maps a toast onto the freedesktop notification model.
// Only local files can be referenced; remote images are skipped because
// nothing here downloads them.
func renderFreedesktop(t Toast, caps capabilities, cfg Config, soundFile string) fdoPayload {
	p := fdoPayload{
		Summary: t.Title,
		Hints:   map[string]dbus.Variant{},
	}
	markup := caps["body-markup"]
	text := func(s string) string {
		if markup {
			return html.EscapeString(s)
		}
		return s
	}

	var body []string
	if t.Message != "" {
		body = append(body, text(t.Message))
	}

	if t.Icon != nil {
		if t.Icon.Scheme == "file" {
			p.AppIcon = t.Icon.String()
		} else {
			p.Skipped = append(p.Skipped, "icon")
		}
	}

	if t.HeroImage != nil {
		if path, ok := localPath(t.HeroImage); ok {
			p.Hints["image-path"] = dbus.MakeVariant(path)
		} else {
			p.Skipped = append(p.Skipped, "hero image")
		}
	}

	if t.InlineImage != nil {
		if caps["body-images"] && markup && t.InlineImage.Scheme == "file" {
			body = append(body, `<img src="`+html.EscapeString(t.InlineImage.String())+`" alt=""/>`)
		} else {
			p.Skipped = append(p.Skipped, "inline image")
		}
	}

	if t.Attribution != "" {
		if markup {
			body = append(body, "<i>"+text(t.Attribution)+"</i>")
		} else {
			body = append(body, t.Attribution)
		}
	}

	if t.Activation != nil {
		if caps["body-hyperlinks"] && markup {
			href := html.EscapeString(t.Activation.String())
			body = append(body, `<a href="`+href+`">`+href+`</a>`)
		} else {
			p.Skipped = append(p.Skipped, "protocol activation")
		}
	}

	if cfg.Silent {
		p.Hints["suppress-sound"] = dbus.MakeVariant(true)
	} else if soundFile != "" {
		p.Hints["sound-file"] = dbus.MakeVariant(soundFile)
	}

	p.Body = strings.Join(body, "\n")
	return p
}
