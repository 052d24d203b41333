package args

import "github.com/wintoast/wintoast/internal/notification"

// Result is the outcome of resolving a command line.
type Result struct {
	Request notification.Request

	// Help is set when a help flag appeared anywhere. Callers must print usage
	// and must not dispatch Request.
	Help bool
}

// resolution accumulates one Resolve call. A fresh value is used per call.
type resolution struct {
	values      map[Field]string
	positionals []string
	help        bool
}

// Parse tokenizes and resolves argv.
func Parse(argv []string) Result {
	return Resolve(Tokenize(argv))
}

// Resolve maps tokens onto a Request. Later flags overwrite earlier ones.
// Positional arguments are taken in command-line order: the first fills the
// title when no title flag supplied one, the next fills the message when no
// message flag supplied one, and the rest are discarded.
func Resolve(tokens []Token) Result {
	r := resolution{values: make(map[Field]string)}
	for _, tok := range tokens {
		switch tok.Kind {
		case KindHelp:
			r.help = true
		case KindFlag:
			r.values[tok.Field] = tok.Value
		default:
			r.positionals = append(r.positionals, tok.Value)
		}
	}
	return Result{Request: r.request(), Help: r.help}
}

func (r *resolution) request() notification.Request {
	next := 0
	fallback := func(field Field) string {
		if v := r.values[field]; v != "" {
			return v
		}
		if next < len(r.positionals) {
			next++
			return r.positionals[next-1]
		}
		return ""
	}
	title := fallback(FieldTitle)
	message := fallback(FieldMessage)

	var opts []notification.Option
	optional := []struct {
		field Field
		with  func(string) notification.Option
	}{
		{FieldIcon, notification.WithIcon},
		{FieldHeroImage, notification.WithHeroImage},
		{FieldInlineImage, notification.WithInlineImage},
		{FieldAttribution, notification.WithAttribution},
		{FieldActivationTarget, notification.WithActivationTarget},
	}
	for _, o := range optional {
		if v, ok := r.values[o.field]; ok {
			opts = append(opts, o.with(v))
		}
	}
	return notification.New(title, message, opts...)
}
