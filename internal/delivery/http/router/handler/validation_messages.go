package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// fieldMessages maps failed struct fields onto the exact messages clients
// display. Anything that is not a field error collapses to a generic
// message so validator internals never reach the wire.
func fieldMessages(err error, messages map[string]string) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid input"}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		msg, ok := messages[fieldErr.Field()]
		if !ok {
			msg = "Invalid " + fieldErr.Field()
		}
		out = append(out, msg)
	}

	return out
}
