package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/wintoast/wintoast/internal/notification"
)

// Sink displays a resolved notification request.
type Sink interface {
	Display(ctx context.Context, req notification.Request) error
}

// Dispatcher is the Sink used by the CLI. It builds a Toast from the request,
// reporting optional elements it had to drop, and hands the Toast to a
// Sender.
type Dispatcher struct {
	config   Config
	sender   Sender
	logger   *slog.Logger
	warnings io.Writer
}

var _ Sink = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher with the sender selected by config.
// Warnings about dropped elements are written to warnings.
func NewDispatcher(config Config, logger *slog.Logger, warnings io.Writer) *Dispatcher {
	return NewDispatcherWithSender(config, NewSender(config, logger), logger, warnings)
}

// NewDispatcherWithSender creates a dispatcher with a custom sender (for testing).
func NewDispatcherWithSender(config Config, sender Sender, logger *slog.Logger, warnings io.Writer) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if warnings == nil {
		warnings = io.Discard
	}
	return &Dispatcher{
		config:   config,
		sender:   sender,
		logger:   logger,
		warnings: warnings,
	}
}

// Config returns the dispatcher's delivery configuration
func (d *Dispatcher) Config() Config {
	return d.config
}

// Display shows req. Invalid optional elements only produce warnings; an
// unavailable or failing sender is returned as an error.
func (d *Dispatcher) Display(ctx context.Context, req notification.Request) error {
	toast, skipped := BuildToast(req)
	for _, e := range skipped {
		d.warn(ctx, e)
	}

	if !d.sender.Available() {
		return fmt.Errorf("%s: %w", d.sender.Name(), ErrUnavailable)
	}

	d.logger.DebugContext(ctx, "sending notification",
		"sender", d.sender.Name(),
		"title", toast.Title,
		"skipped", len(skipped),
	)
	if err := d.sender.Send(ctx, toast); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return fmt.Errorf("%s: %w", d.sender.Name(), err)
		}
		return fmt.Errorf("displaying notification: %w", err)
	}
	return nil
}

var warningPrefix = color.New(color.FgYellow, color.Bold)

func (d *Dispatcher) warn(ctx context.Context, e *ElementError) {
	d.logger.WarnContext(ctx, "skipping notification element", "element", e.Element, "value", e.Value)
	warningPrefix.Fprint(d.warnings, "Warning:")
	fmt.Fprintf(d.warnings, " %s\n", e.Error())
}
