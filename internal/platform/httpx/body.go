package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

// MaxBodyBytes caps the size of request payloads.
const MaxBodyBytes = 1 << 20

// Body is the raw payload of a request: either Present or Missing.
type Body interface {
	isBody()
}

// Present carries a non-empty request payload.
type Present struct {
	Raw []byte
}

// Missing marks a request without a payload (no bytes, whitespace only, or JSON null).
type Missing struct{}

func (Present) isBody() {}
func (Missing) isBody() {}

// ReadBody drains the request body into a Body.
func ReadBody(r *http.Request) (Body, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return Missing{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, shared.NewValidationError("body", "read", err.Error())
	}
	if len(raw) > MaxBodyBytes {
		return nil, shared.NewValidationError("body", "max", fmt.Sprintf("request body exceeds %d bytes", MaxBodyBytes))
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Missing{}, nil
	}
	return Present{Raw: trimmed}, nil
}

// Validator is satisfied by *shared.Validator.
type Validator interface {
	Struct(s any) error
}

// Decode turns a Body into a validated payload of type T.
func Decode[T any](body Body, v Validator) (T, error) {
	var out T
	switch b := body.(type) {
	case Missing:
		return out, shared.ErrMissingBody
	case Present:
		if err := json.Unmarshal(b.Raw, &out); err != nil {
			return out, decodeError(err)
		}
		if err := v.Struct(out); err != nil {
			return out, err
		}
		return out, nil
	default:
		return out, shared.ErrMissingBody
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return shared.NewValidationError(field, "type", fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return shared.NewValidationError("body", "json", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}
	return shared.NewValidationError("body", "json", err.Error())
}

// ParseID reads a positive integer URL parameter.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, shared.NewValidationError(name, "int", "value is not a valid integer")
	}
	return id, nil
}
