// Package async provides generic futures for work that must finish after the
// caller returns.
//
// Async starts a function in its own goroutine and returns a *Future. Callers
// wait with Await, bound the wait with AwaitContext, or poll with IsComplete.
// WaitAll settles a batch of futures and joins their errors.
//
//	f := async.Async(ctx, "  raw  ", func(_ context.Context, s string) (string, error) {
//	    return strings.TrimSpace(s), nil
//	})
//	clean, err := f.Await()
//
// A context that is already done when Async is called completes the future
// with the context error and fn is never run. Cancelling later is up to fn.
package async
