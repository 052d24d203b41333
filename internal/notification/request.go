// Package notification defines the resolved notification request that the
// argument resolver hands to a notification sink.
package notification

// Request is a fully resolved notification. Its fields are only set by New;
// building a different notification means resolving a new Request.
//
// URI-bearing elements are stored exactly as given. Whether they are valid
// URIs is decided by the sink, so an element can be present but invalid,
// which is not the same as absent.
type Request struct {
	title   string
	message string

	icon             optional
	heroImage        optional
	inlineImage      optional
	attribution      optional
	activationTarget optional
}

type optional struct {
	value string
	set   bool
}

func (o optional) get() (string, bool) {
	return o.value, o.set
}

// Option sets one optional element on a Request under construction.
type Option func(*Request)

// WithIcon overrides the application logo.
func WithIcon(uri string) Option {
	return func(r *Request) { r.icon = optional{value: uri, set: true} }
}

// WithHeroImage adds a large banner image.
func WithHeroImage(uri string) Option {
	return func(r *Request) { r.heroImage = optional{value: uri, set: true} }
}

// WithInlineImage adds an image shown within the body.
func WithInlineImage(uri string) Option {
	return func(r *Request) { r.inlineImage = optional{value: uri, set: true} }
}

// WithAttribution adds a small attribution line.
func WithAttribution(text string) Option {
	return func(r *Request) { r.attribution = optional{value: text, set: true} }
}

// WithActivationTarget sets the URI invoked when the user clicks the notification.
func WithActivationTarget(uri string) Option {
	return func(r *Request) { r.activationTarget = optional{value: uri, set: true} }
}

// New creates a Request with the given title, message and optional elements.
func New(title, message string, opts ...Option) Request {
	r := Request{title: title, message: message}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Title returns the notification title, possibly empty.
func (r Request) Title() string { return r.title }

// Message returns the notification body text, possibly empty.
func (r Request) Message() string { return r.message }

// Icon returns the raw icon URI and whether one was given.
func (r Request) Icon() (string, bool) { return r.icon.get() }

// HeroImage returns the raw hero image URI and whether one was given.
func (r Request) HeroImage() (string, bool) { return r.heroImage.get() }

// InlineImage returns the raw inline image URI and whether one was given.
func (r Request) InlineImage() (string, bool) { return r.inlineImage.get() }

// Attribution returns the attribution text and whether one was given.
func (r Request) Attribution() (string, bool) { return r.attribution.get() }

// ActivationTarget returns the raw activation URI and whether one was given.
func (r Request) ActivationTarget() (string, bool) { return r.activationTarget.get() }

// IsEmpty reports whether the request carries neither a title nor a message.
func (r Request) IsEmpty() bool {
	return r.title == "" && r.message == ""
}

// Equal reports whether both requests hold the same values and the same
// present/absent state for every optional element.
func (r Request) Equal(other Request) bool {
	return r == other
}
