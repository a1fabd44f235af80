package idempotency

import (
	"strings"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/pipeline"
)

const maxKeyLength = 200

var (
	IDEMPOTENCY_HEADER = "Idempotency-Key"
)

// SetHeader overrides the header the retry key is read from.
func SetHeader(name string) {
	if name = strings.TrimSpace(name); name != "" {
		IDEMPOTENCY_HEADER = name
	}
}

// IdempotencyMiddleware binds the retry key and the authenticated caller to the request
// context. Requests without a key pass through and run without idempotency protection.
//
//encore:middleware target=tag:idempotent
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx, ic := pipeline.WithIdempotency(req.Context())
	if key == "" {
		rlog.Debug("no idempotency key on request", "path", req.Data().Path)
		return next(req.WithContext(ctx))
	}

	callerID := callerFromAuth()
	ic.Set(key, callerID)
	rlog.Debug("idempotency context enabled", "key", key, "caller_id", callerID)

	return next(req.WithContext(ctx))
}

// extractIdempotencyKey returns the trimmed key, or "" when the header is absent or blank.
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	headers := req.Data().Headers
	if headers == nil {
		return "", nil
	}

	key := strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER))
	if len(key) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: IDEMPOTENCY_HEADER + " header must be at most 200 characters"}
	}
	return key, nil
}

// callerFromAuth returns the authenticated caller id, or nil for anonymous requests.
func callerFromAuth() *uuid.UUID {
	uid, ok := auth.UserID()
	if !ok {
		return nil
	}
	id, err := uuid.Parse(string(uid))
	if err != nil {
		rlog.Warn("authenticated user id is not a uuid, treating caller as anonymous", "uid", uid)
		return nil
	}
	return &id
}
