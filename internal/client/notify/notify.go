// Package notify defines the fire-and-forget user notification capability.
// The core components report every outcome through it; the presentation layer
// decides how a notification is shown.
package notify

import (
	"fmt"
	"io"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier displays a transient message to the user. No return value is
// consumed by callers.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Console writes notifications to a terminal, one per line.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(kind Kind, message string) {
	prefix := "ok"
	if kind == Error {
		prefix = "error"
	}
	fmt.Fprintf(c.w, "[%s] %s\n", prefix, message)
}
