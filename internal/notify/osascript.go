package notify

import "strings"

// appleScript builds a `display notification` statement. Attribution is shown
// as the subtitle; macOS has no equivalent for the image elements or
// activation targets.
func appleScript(t Toast) string {
	var b strings.Builder
	b.WriteString("display notification ")
	b.WriteString(appleScriptQuote(t.Message))
	b.WriteString(" with title ")
	b.WriteString(appleScriptQuote(t.Title))
	if t.Attribution != "" {
		b.WriteString(" subtitle ")
		b.WriteString(appleScriptQuote(t.Attribution))
	}
	return b.String()
}

// appleScriptQuote returns s as an AppleScript string literal.
func appleScriptQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// unsupportedOnDarwin lists the elements of t that appleScript drops.
func unsupportedOnDarwin(t Toast) []string {
	var dropped []string
	if t.Icon != nil {
		dropped = append(dropped, "icon")
	}
	if t.HeroImage != nil {
		dropped = append(dropped, "hero image")
	}
	if t.InlineImage != nil {
		dropped = append(dropped, "inline image")
	}
	if t.Activation != nil {
		dropped = append(dropped, "protocol activation")
	}
	return dropped
}
