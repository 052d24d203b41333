// Package cli tests the root command: help handling, dispatch and exit codes.
// Related: internal/cli/root.go, internal/cli/exit_codes.go
// Tags: cli, cobra, dispatch, exit-codes, help
package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintoast/wintoast/internal/config"
	"github.com/wintoast/wintoast/internal/notification"
	"github.com/wintoast/wintoast/internal/notify"
)

// fakeSink records every request it is asked to display.
type fakeSink struct {
	err      error
	requests []notification.Request
}

func (s *fakeSink) Display(_ context.Context, req notification.Request) error {
	s.requests = append(s.requests, req)
	return s.err
}

// fakeSender records toasts handed over by a real Dispatcher.
type fakeSender struct {
	toasts []notify.Toast
}

func (s *fakeSender) Name() string    { return "fake" }
func (s *fakeSender) Available() bool { return true }
func (s *fakeSender) Send(_ context.Context, t notify.Toast) error {
	s.toasts = append(s.toasts, t)
	return nil
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		AppID:         "wintoast",
		Backend:       "auto",
		ExpireTimeout: -1,
		LogLevel:      "warn",
	}
}

func sinkDeps(sink notify.Sink) deps {
	return deps{
		loadConfig: func() (*config.Configuration, error) { return testConfig(), nil },
		newSink: func(*config.Configuration, *slog.Logger, io.Writer) notify.Sink {
			return sink
		},
	}
}

func execute(t *testing.T, d deps, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = runWith(context.Background(), d, argv, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_HelpAndEmpty(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		argv []string
	}{
		"no arguments":            {argv: nil},
		"long help":               {argv: []string{"--help"}},
		"short help":              {argv: []string{"-h"}},
		"bare help word":          {argv: []string{"help"}},
		"help before other flags": {argv: []string{"--help", "-t", "Ignored"}},
		"help after positionals":  {argv: []string{"Hi", "There", "-h"}},
		"only a trailing flag":    {argv: []string{"-t"}},
		"only optional elements":  {argv: []string{"-l", "/tmp/icon.png"}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sink := &fakeSink{}

			code, stdout, stderr := execute(t, sinkDeps(sink), tt.argv...)

			assert.Equal(t, ExitSuccess, code)
			assert.Contains(t, stdout, usageLine)
			assert.Empty(t, stderr)
			assert.Empty(t, sink.requests, "help must never dispatch")
		})
	}
}

func TestRun_Dispatches(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		argv        []string
		wantTitle   string
		wantMessage string
	}{
		"flags": {
			argv:        []string{"-t", "Hi", "-m", "There"},
			wantTitle:   "Hi",
			wantMessage: "There",
		},
		"positional fallback": {
			argv:        []string{"Hi", "There"},
			wantTitle:   "Hi",
			wantMessage: "There",
		},
		"message only": {
			argv:        []string{"-m", "Body"},
			wantTitle:   "",
			wantMessage: "Body",
		},
		"title flag then positionals": {
			argv:        []string{"-t", "Hi", "There", "Extra"},
			wantTitle:   "Hi",
			wantMessage: "There",
		},
		"unknown flag is positional": {
			argv:        []string{"--bogus", "x"},
			wantTitle:   "--bogus",
			wantMessage: "x",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sink := &fakeSink{}

			code, stdout, stderr := execute(t, sinkDeps(sink), tt.argv...)

			assert.Equal(t, ExitSuccess, code)
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
			require.Len(t, sink.requests, 1)
			assert.Equal(t, tt.wantTitle, sink.requests[0].Title())
			assert.Equal(t, tt.wantMessage, sink.requests[0].Message())
		})
	}
}

func TestRun_SinkError(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{err: errors.New("toast notifier unavailable")}

	code, stdout, stderr := execute(t, sinkDeps(sink), "Hi", "There")

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "toast notifier unavailable")
	assert.Len(t, sink.requests, 1)
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	d := deps{
		loadConfig: func() (*config.Configuration, error) {
			return nil, errors.New("config validation failed: field 'backend': must be one of: auto, native, beeep")
		},
		newSink: func(*config.Configuration, *slog.Logger, io.Writer) notify.Sink { return sink },
	}

	code, _, stderr := execute(t, d, "Hi")

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "Error: config validation failed")
	assert.Empty(t, sink.requests)
}

func TestRun_ConfigNotLoadedForHelp(t *testing.T) {
	t.Parallel()
	loaded := false
	d := deps{
		loadConfig: func() (*config.Configuration, error) {
			loaded = true
			return nil, errors.New("should not be called")
		},
		newSink: func(*config.Configuration, *slog.Logger, io.Writer) notify.Sink { return &fakeSink{} },
	}

	code, _, _ := execute(t, d, "--help")

	assert.Equal(t, ExitSuccess, code)
	assert.False(t, loaded)
}

func TestRun_InvalidElementWarnsAndContinues(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	d := deps{
		loadConfig: func() (*config.Configuration, error) { return testConfig(), nil },
		newSink: func(cfg *config.Configuration, logger *slog.Logger, warnings io.Writer) notify.Sink {
			return notify.NewDispatcherWithSender(cfg.Notify(), sender, logger, warnings)
		},
	}

	code, _, stderr := execute(t, d, "-t", "Hi", "-l", "not a uri", "-a", "https://example.com")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "Warning: The icon URI 'not a uri' is not a valid URI.")
	require.Len(t, sender.toasts, 1)
	assert.Nil(t, sender.toasts[0].Icon)
	require.NotNil(t, sender.toasts[0].Activation)
	assert.Equal(t, "https://example.com", sender.toasts[0].Activation.String())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":             {err: nil, want: ExitSuccess},
		"plain error":     {err: errors.New("boom"), want: ExitFailure},
		"exit error":      {err: NewExitError(3, errors.New("boom")), want: 3},
		"wrapped exit":    {err: errors.Join(errors.New("ctx"), NewExitError(4, errors.New("boom"))), want: 4},
		"nil wrapped err": {err: NewExitError(2, nil), want: ExitSuccess},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestNewExitError_KeepsMessageAndChain(t *testing.T) {
	t.Parallel()
	err := NewExitError(ExitFailure, notify.ErrUnavailable)

	assert.Equal(t, notify.ErrUnavailable.Error(), err.Error())
	assert.ErrorIs(t, err, notify.ErrUnavailable)
}
