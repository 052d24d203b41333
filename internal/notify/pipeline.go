package notify

import (
	"fmt"
	"net/url"

	"github.com/wintoast/wintoast/internal/notification"
)

// ElementError reports an optional element that was left out of a Toast.
type ElementError struct {
	Element string
	Value   string
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("The %s URI '%s' is not a valid URI.", e.Element, e.Value)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// step adds one optional element to a Toast. Absent or empty elements are
// skipped, and a failing step never stops the ones after it.
type step struct {
	element string
	get     func(notification.Request) (string, bool)
	uri     bool
	set     func(t *Toast, raw string, u *url.URL)
}

// The logo goes in before the images and activation is attached last; some
// renderers lay out later elements relative to earlier ones.
var pipeline = []step{
	{
		element: "icon",
		get:     notification.Request.Icon,
		uri:     true,
		set:     func(t *Toast, _ string, u *url.URL) { t.Icon = u },
	},
	{
		element: "hero image",
		get:     notification.Request.HeroImage,
		uri:     true,
		set:     func(t *Toast, _ string, u *url.URL) { t.HeroImage = u },
	},
	{
		element: "inline image",
		get:     notification.Request.InlineImage,
		uri:     true,
		set:     func(t *Toast, _ string, u *url.URL) { t.InlineImage = u },
	},
	{
		element: "attribution",
		get:     notification.Request.Attribution,
		set:     func(t *Toast, raw string, _ *url.URL) { t.Attribution = raw },
	},
	{
		element: "protocol activation",
		get:     notification.Request.ActivationTarget,
		uri:     true,
		set:     func(t *Toast, _ string, u *url.URL) { t.Activation = u },
	},
}

// BuildToast runs the element pipeline over req. Elements that could not be
// added are returned as *ElementError values in pipeline order.
func BuildToast(req notification.Request) (Toast, []*ElementError) {
	toast := Toast{Title: req.Title(), Message: req.Message()}
	var skipped []*ElementError
	for _, s := range pipeline {
		raw, ok := s.get(req)
		if !ok || raw == "" {
			continue
		}
		var u *url.URL
		if s.uri {
			parsed, err := ParseURI(raw)
			if err != nil {
				skipped = append(skipped, &ElementError{Element: s.element, Value: raw, Err: err})
				continue
			}
			u = parsed
		}
		s.set(&toast, raw, u)
	}
	return toast, skipped
}
