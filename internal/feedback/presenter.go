// Package feedback surfaces transient user-facing messages. The site rendered
// these as auto-dismissing banners; how a message is shown is up to the
// Presenter implementation, the controllers only report outcomes.
package feedback

import (
	"context"

	"github.com/radiancespa/siteforms/pkg/logging"
)

// Level classifies a transient message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Presenter shows a transient message to the visitor of a session.
type Presenter interface {
	Flash(ctx context.Context, sessionID string, level Level, text string)
}

// LogPresenter writes messages to the structured log. It is the default
// Presenter when no richer channel is wired.
type LogPresenter struct {
	logger *logging.Logger
}

// NewLogPresenter creates a log-backed presenter.
func NewLogPresenter(logger *logging.Logger) *LogPresenter {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogPresenter{logger: logger}
}

// Flash logs the message.
func (p *LogPresenter) Flash(ctx context.Context, sessionID string, level Level, text string) {
	p.logger.Info("flash message",
		"session_id", sessionID,
		"level", string(level),
		"text", text,
	)
}

var _ Presenter = (*LogPresenter)(nil)
