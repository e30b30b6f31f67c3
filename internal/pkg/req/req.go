/*
Package req provides helper functions for HTTP request parsing and data binding.

It wraps JSON decoding, multipart parsing and struct validation so handlers receive
either a populated, validated value or a ready-to-send *errs.CustomError.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"chatserver/internal/pkg/errs"
)

const (
	// MaxFormMemory is the memory ParseMultipartForm may use before spilling files to disk.
	MaxFormMemory int64 = 8 << 20 // 8 MB

	// MaxRequestFileSize caps the whole multipart body (5 files of 5 MB plus form fields).
	MaxRequestFileSize int64 = 26 << 20 // 26 MB

	// MaxJSONBodySize caps JSON request bodies.
	MaxJSONBodySize int64 = 1 << 20 // 1 MB
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validator exposes the shared validator instance.
func Validator() *validator.Validate {
	return validate
}

// Validate runs struct validation and converts the first failure into ErrValidationFailed.
func Validate(dst any) *errs.CustomError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return errs.NewError(errs.ErrValidationFailed, validationErrs[0].Field())
	}

	return errs.NewError(errs.ErrInvalidParams)
}

// BindJSON decodes the JSON body into dst, rejects unknown fields and trailing data,
// then validates dst.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return Validate(dst)
}

// SetupMultipart parses a multipart or URL-encoded form, enforcing MaxRequestFileSize.
func SetupMultipart(w http.ResponseWriter, r *http.Request) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestFileSize)

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}

		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}

// QueryInt reads a positive integer query parameter, falling back to def.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}

	return n
}
