package vmerror

import (
	"github.com/retroenv/retrogolib/log"
)

// Reporter holds at most one exception in flight until the host consumes it.
type Reporter struct {
	logger  *log.Logger
	pending *Error
}

// NewReporter returns a new exception reporter.
func NewReporter(logger *log.Logger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// Report records the exception and returns it. If an earlier exception has
// not been consumed yet, the earlier one is kept and returned instead, the
// host failed to consume it before continuing. Exceptions are logged at
// warning level, the host decides how severe they are.
func (r *Reporter) Report(err *Error) *Error {
	if r.pending != nil {
		r.logger.Warn("Exception reported before previous one was consumed",
			log.Stringer("pending", r.pending.Code),
			log.Stringer("dropped", err.Code))
		return r.pending
	}

	r.logger.Warn(err.Code.Description(),
		log.Stringer("code", err.Code),
		log.String("message", err.Message))
	r.pending = err
	return err
}

// Pending returns the exception in flight without consuming it.
func (r *Reporter) Pending() *Error {
	return r.pending
}

// Consume returns the exception in flight and clears it.
func (r *Reporter) Consume() *Error {
	err := r.pending
	r.pending = nil
	return err
}
