package seqquery

import (
	"context"
	"errors"
)

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}

// streamError returns the cause of ctx's cancelation, or nil if the stream was only short-circuited.
func streamError(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		return nil
	}

	return err
}
