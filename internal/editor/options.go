package editor

import (
	"github.com/Drawing-master/Drawing-Master/internal/history"
	"github.com/Drawing-master/Drawing-Master/internal/tool"
)

// Option configures an Editor during creation.
type Option func(*options)

type options struct {
	capacity int
	tools    tool.Context
	onText   func(TextRequest)
}

func defaultOptions() options {
	return options{
		capacity: history.DefaultCapacity,
		tools:    tool.NewContext(),
	}
}

// WithHistoryCapacity sets how many committed states are kept.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithTools sets the initial tool settings.
func WithTools(c tool.Context) Option {
	return func(o *options) {
		o.tools = c
	}
}

// WithTextHandler registers fn to be called when the text tool needs input.
// The handler may answer immediately by calling SubmitText, or return and
// let the UI call SubmitText or CancelText once the user responds.
func WithTextHandler(fn func(TextRequest)) Option {
	return func(o *options) {
		o.onText = fn
	}
}
