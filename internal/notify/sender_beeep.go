package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// beeepSender delivers title, message and a local icon through the
// cross-platform beeep library. Images other than the icon and activation
// targets are not supported.
type beeepSender struct {
	config Config
}

func newBeeepSender(cfg Config) Sender {
	return &beeepSender{config: cfg}
}

func (s *beeepSender) Name() string { return "beeep" }

// Available returns true since beeep handles platform detection internally.
func (s *beeepSender) Available() bool { return true }

func (s *beeepSender) Send(ctx context.Context, t Toast) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	icon, _ := localPath(t.Icon)
	return beeep.Notify(t.Title, beeepBody(t), icon)
}

func beeepBody(t Toast) string {
	if t.Attribution == "" {
		return t.Message
	}
	if t.Message == "" {
		return t.Attribution
	}
	return t.Message + "\n" + t.Attribution
}
