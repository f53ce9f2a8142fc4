package kodec

import (
	"log"
	"sync"

	"github.com/zeebo/errs"

	"github.com/adokky/kodec/atof"
)

// Error is the error class for this package.
var Error = errs.Class("kodec")

// ErrorHandler decides what a malformed literal means to the caller. A nil
// return lets parsing continue with the NaN result.
type ErrorHandler interface {
	Handle(err *atof.SyntaxError) error
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(err *atof.SyntaxError) error

// Handle calls f.
func (f ErrorHandlerFunc) Handle(err *atof.SyntaxError) error {
	return f(err)
}

// Raise returns the syntax error with a stack trace attached.
var Raise ErrorHandler = ErrorHandlerFunc(func(err *atof.SyntaxError) error {
	return Error.Wrap(err)
})

// Ignore drops syntax errors.
var Ignore ErrorHandler = ErrorHandlerFunc(func(*atof.SyntaxError) error {
	return nil
})

// Log returns a handler that prints syntax errors to l and recovers.
func Log(l *log.Logger) ErrorHandler {
	return ErrorHandlerFunc(func(err *atof.SyntaxError) error {
		l.Printf("kodec: %v", err)

		return nil
	})
}

// Collect gathers syntax errors so a tokenizer can report them all at the
// end. It is safe for concurrent use.
type Collect struct {
	mu    sync.Mutex
	group errs.Group
}

// Handle records err and recovers.
func (c *Collect) Handle(err *atof.SyntaxError) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.group.Add(err)

	return nil
}

// Len returns the number of errors collected.
func (c *Collect) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.group)
}

// Err returns the collected errors combined, or nil.
func (c *Collect) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.group.Err()
}

// Options configure parsing.
type Options struct {
	// AllowSpecial accepts the literals Infinity and NaN.
	AllowSpecial bool

	// Handler receives malformed literals. Nil means Raise.
	Handler ErrorHandler
}

func (o Options) handle(err error) error {
	se, ok := err.(*atof.SyntaxError)
	if !ok {
		return Error.Wrap(err)
	}

	h := o.Handler
	if h == nil {
		h = Raise
	}

	return h.Handle(se)
}
