package routes

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors flattens validator output into a details map keyed by the
// offending JSON-ish field name.
func fieldErrors(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return out
}
