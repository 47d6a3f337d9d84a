package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
)

// MaxBodyBytes is the largest request body accepted for JSON decoding (1 MB).
const MaxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

// DecodeStrict decodes exactly one JSON value from r into dst. Unknown fields
// and trailing data are rejected. Any failure is returned as a
// *domain.ValidationError naming the offending field, or "body".
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		if _, extra := dec.Token(); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		return &domain.ValidationError{Fields: bodyErrorFields(err)}
	}
	return nil
}

// bodyErrorFields turns a decoding failure into validation fields. Unknown
// fields are reported under their own name.
func bodyErrorFields(err error) map[string]string {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return map[string]string{"body": fmt.Sprintf("must not exceed %d bytes", maxErr.Limit)}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()}
	}

	// encoding/json reports unknown fields only through the message text.
	const unknownPrefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownPrefix) {
		return map[string]string{strings.Trim(strings.TrimPrefix(msg, unknownPrefix), `"`): "is not allowed"}
	}

	if errors.Is(err, io.EOF) {
		return map[string]string{"body": domain.MsgRequired}
	}
	return map[string]string{"body": "invalid JSON"}
}
