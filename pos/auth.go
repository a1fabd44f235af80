package pos

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/jackc/pgx/v5"

	"posapp/pos/store/pgtx"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// AuthData is attached to every authenticated request.
type AuthData struct {
	Role string
}

// AuthHandler resolves a bearer API token to the caller it was issued to. Tokens are
// stored as sha256 hex digests.
//
//encore:authhandler
func (s *Service) AuthHandler(ctx context.Context, token string) (auth.UID, *AuthData, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "missing api token"}
	}

	row, err := s.tokens.GetCallerByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid api token"}
		}
		rlog.Error("failed to look up api token", "error", err)
		return "", nil, errs.WrapCode(err, errs.Internal, "failed to authenticate")
	}

	return auth.UID(pgtx.FromUUID(row.CallerID).String()), &AuthData{Role: row.Role}, nil
}

// requireAdmin rejects callers whose token was not issued with the admin role.
func requireAdmin() error {
	data, _ := auth.Data().(*AuthData)
	if data == nil || data.Role != RoleAdmin {
		return &errs.Error{Code: errs.PermissionDenied, Message: "admin role required"}
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
