package args

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wintoast/wintoast/internal/notification"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		argv     []string
		want     notification.Request
		wantHelp bool
	}{
		"flags": {
			argv: []string{"-t", "Hi", "-m", "There"},
			want: notification.New("Hi", "There"),
		},
		"positional fallback": {
			argv: []string{"Hi", "There"},
			want: notification.New("Hi", "There"),
		},
		"flag wins and next positional becomes message": {
			argv: []string{"-t", "Hi", "There", "Extra"},
			want: notification.New("Hi", "There"),
		},
		"message flag only": {
			argv: []string{"-m", "Body"},
			want: notification.New("", "Body"),
		},
		"message flag with positional title": {
			argv: []string{"Title", "-m", "Body", "Extra"},
			want: notification.New("Title", "Body"),
		},
		"no arguments": {
			argv: []string{},
			want: notification.New("", ""),
		},
		"help first": {
			argv:     []string{"--help", "-t", "Ignored"},
			want:     notification.New("Ignored", ""),
			wantHelp: true,
		},
		"help last": {
			argv:     []string{"Hi", "There", "-h"},
			want:     notification.New("Hi", "There"),
			wantHelp: true,
		},
		"trailing flag leaves title unset": {
			argv: []string{"-t"},
			want: notification.New("", ""),
		},
		"unknown flag is positional": {
			argv: []string{"--bogus"},
			want: notification.New("--bogus", ""),
		},
		"last write wins": {
			argv: []string{"-t", "one", "--title", "two"},
			want: notification.New("two", ""),
		},
		"empty title flag falls back to positional": {
			argv: []string{"-t", "", "Hi"},
			want: notification.New("Hi", ""),
		},
		"positional order is command-line order": {
			argv: []string{"first", "-l", "file:///x.png", "second"},
			want: notification.New("first", "second", notification.WithIcon("file:///x.png")),
		},
		"all optional elements": {
			argv: []string{
				"Hi", "There",
				"-l", "file:///logo.png",
				"--hero-image", "https://example.com/hero.png",
				"-ii", "https://example.com/inline.png",
				"--attribution", "via wintoast",
				"--activate", "https://example.com",
			},
			want: notification.New("Hi", "There",
				notification.WithIcon("file:///logo.png"),
				notification.WithHeroImage("https://example.com/hero.png"),
				notification.WithInlineImage("https://example.com/inline.png"),
				notification.WithAttribution("via wintoast"),
				notification.WithActivationTarget("https://example.com"),
			),
		},
		"invalid uri is kept raw": {
			argv: []string{"Hi", "-i", "not a uri"},
			want: notification.New("Hi", "", notification.WithHeroImage("not a uri")),
		},
		"empty optional value is present": {
			argv: []string{"Hi", "--logo", ""},
			want: notification.New("Hi", "", notification.WithIcon("")),
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.argv)
			assert.True(t, tt.want.Equal(got.Request), "got %+v, want %+v", got.Request, tt.want)
			assert.Equal(t, tt.wantHelp, got.Help)
		})
	}
}

func TestParse_MessageAliasesAreEquivalent(t *testing.T) {
	t.Parallel()

	want := Parse([]string{"-m", "X"}).Request
	for _, alias := range []string{"--message", "--body", "--contents"} {
		got := Parse([]string{alias, "X"}).Request
		assert.True(t, want.Equal(got), alias)
		assert.Equal(t, "X", got.Message(), alias)
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{},
		{"Hi", "There"},
		{"-t", "Hi", "There", "Extra", "--bogus"},
		{"--help", "-m", "x", "-a"},
		{"-i", "https://example.com/a.png", "-t", "a", "-t", "b"},
	}

	for _, argv := range inputs {
		first := Parse(argv)
		second := Parse(argv)
		assert.True(t, first.Request.Equal(second.Request), "%q", argv)
		assert.Equal(t, first.Help, second.Help, "%q", argv)
	}
}

func TestResolve_DoesNotMutateTokens(t *testing.T) {
	t.Parallel()

	tokens := Tokenize([]string{"-t", "Hi", "There"})
	snapshot := append([]Token(nil), tokens...)

	Resolve(tokens)
	Resolve(tokens)

	assert.Equal(t, snapshot, tokens)
}
