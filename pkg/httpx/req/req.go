package req

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"results_api/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes a JSON body into dest and runs struct validation on it.
// Both failures, and a missing body, are reported as invalid-argument errors.
func Read(r *http.Request, dest any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errBodyRequired()
	}

	return decode(r, dest, false)
}

// ReadOptional is Read for endpoints where an empty body means "no fields":
// dest is left untouched and no validation runs. Bodies of unknown length
// that turn out empty are treated the same way.
func ReadOptional(r *http.Request, dest any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	return decode(r, dest, true)
}

func decode(r *http.Request, dest any, allowEmpty bool) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			if allowEmpty {
				return nil
			}

			return errBodyRequired()
		}

		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

func errBodyRequired() error {
	return failure.NewInvalidArgumentError(
		"empty request body",
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription("Request body is required"),
	)
}
