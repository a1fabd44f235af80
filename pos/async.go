package pos

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// Workflow starts and signals get their own deadline; the request that triggered them
// may already have returned.
const asyncTimeout = 5 * time.Second

// runAsync dispatches workflow notifications. Tests replace it to run them inline.
var runAsync = notifyInBackground

func notifyInBackground(op string, notify func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		started := time.Now()
		err := notify(ctx)
		if err != nil {
			rlog.Error("workflow notification failed", "op", op, "elapsed", time.Since(started), "error", err)
			return
		}
		rlog.Debug("workflow notification sent", "op", op, "elapsed", time.Since(started))
	}()
}
