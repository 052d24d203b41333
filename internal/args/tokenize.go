// Package args turns a raw command line into a notification.Request.
//
// Parsing is deliberately permissive: flags and positional arguments may
// appear in any order, unknown tokens are kept as positional text, a trailing
// flag with no value is ignored and repeated flags overwrite each other.
// Nothing in this package returns an error.
package args

import "slices"

// Field identifies the notification element a flag sets.
type Field int

const (
	FieldTitle Field = iota + 1
	FieldMessage
	FieldHeroImage
	FieldInlineImage
	FieldIcon
	FieldAttribution
	FieldActivationTarget
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldMessage:
		return "message"
	case FieldHeroImage:
		return "heroImage"
	case FieldInlineImage:
		return "inlineImage"
	case FieldIcon:
		return "icon"
	case FieldAttribution:
		return "attribution"
	case FieldActivationTarget:
		return "activationTarget"
	default:
		return "unknown"
	}
}

// Flag describes one recognized option and all of its aliases.
type Flag struct {
	// Field is zero for the help flag, which takes no value.
	Field       Field
	Aliases     []string
	Placeholder string
	Usage       string
}

// Help reports whether this is the value-less help flag.
func (f Flag) Help() bool {
	return f.Field == 0
}

var flags = []Flag{
	{Field: FieldTitle, Aliases: []string{"-t", "--title"}, Placeholder: "<title>", Usage: "The notification title"},
	{Field: FieldMessage, Aliases: []string{"-m", "--message", "--body", "--contents"}, Placeholder: "<message>", Usage: "The notification message"},
	{Field: FieldHeroImage, Aliases: []string{"-i", "--image", "--hero-image"}, Placeholder: "<url>", Usage: "A hero image to show with the notification"},
	{Field: FieldInlineImage, Aliases: []string{"-ii", "--inline-image"}, Placeholder: "<url>", Usage: "An image to show within the notification"},
	{Field: FieldIcon, Aliases: []string{"-l", "--logo"}, Placeholder: "<url>", Usage: "The notification icon"},
	{Field: FieldAttribution, Aliases: []string{"--attribution"}, Placeholder: "<text>", Usage: "Attribution text to show on the notification"},
	{Field: FieldActivationTarget, Aliases: []string{"-a", "--action", "--activate"}, Placeholder: "<url>", Usage: "URI to open when the notification is clicked"},
	{Aliases: []string{"-h", "--help", "help"}, Usage: "Show this help message"},
}

// byAlias is built once from flags and never written afterwards.
var byAlias = func() map[string]Flag {
	m := make(map[string]Flag)
	for _, f := range flags {
		for _, alias := range f.Aliases {
			m[alias] = f
		}
	}
	return m
}()

// Flags returns a copy of the recognized flag table in display order.
func Flags() []Flag {
	out := make([]Flag, len(flags))
	for i, f := range flags {
		f.Aliases = slices.Clone(f.Aliases)
		out[i] = f
	}
	return out
}

// Lookup returns the flag a token names. Matching is exact and case-sensitive.
func Lookup(token string) (Flag, bool) {
	f, ok := byAlias[token]
	return f, ok
}

// Kind classifies a token.
type Kind int

const (
	KindPositional Kind = iota
	KindFlag
	KindHelp
)

// Token is one classified element of the command line. For KindFlag, Name is
// the alias as typed and Value the argument it consumed.
type Token struct {
	Kind  Kind
	Field Field
	Name  string
	Value string
}

func (t Token) String() string {
	switch t.Kind {
	case KindFlag:
		return t.Name + "=" + t.Value
	case KindHelp:
		return t.Name
	default:
		return t.Value
	}
}

// Tokenize classifies argv left to right. A recognized value flag consumes the
// next argument whatever it looks like; when it is the last argument it is
// dropped. Anything that is not a recognized alias is positional.
func Tokenize(argv []string) []Token {
	tokens := make([]Token, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		flag, ok := Lookup(arg)
		switch {
		case !ok:
			tokens = append(tokens, Token{Kind: KindPositional, Value: arg})
		case flag.Help():
			tokens = append(tokens, Token{Kind: KindHelp, Name: arg})
		case i+1 < len(argv):
			i++
			tokens = append(tokens, Token{Kind: KindFlag, Field: flag.Field, Name: arg, Value: argv[i]})
		}
	}
	return tokens
}
