package pos

import (
	"strings"

	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// parseID parses a uuid path parameter.
func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid " + name + " ID"}
	}
	return id, nil
}
