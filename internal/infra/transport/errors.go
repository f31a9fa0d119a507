package transport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	domainerrors "jobboard/internal/domain/errors"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ResponseError is a non-2xx answer from the API. It unwraps to the classified domain error.
type ResponseError struct {
	StatusCode int
	Body       []byte
	err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("api responded %d: %v", e.StatusCode, e.err)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

// Detail returns the service's human readable message, if any.
func (e *ResponseError) Detail() string {
	return detailOf(e.Body)
}

// AsResponseError extracts a ResponseError from an error chain.
func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}

	return nil, false
}

// IsStatus reports whether err is a ResponseError with the given status code.
func IsStatus(err error, status int) bool {
	respErr, ok := AsResponseError(err)

	return ok && respErr.StatusCode == status
}

func classify(status int, body []byte) error {
	detail := detailOf(body)

	switch {
	case status == http.StatusBadRequest:
		return validationFromBody(body)
	case status == http.StatusUnauthorized:
		return domainerrors.ErrNotAuthenticated.WithDetails(detail)
	case status == http.StatusForbidden:
		return domainerrors.ErrForbidden.WithDetails(detail)
	case status == http.StatusNotFound:
		return domainerrors.ErrNotFound.WithDetails(detail)
	case status >= http.StatusInternalServerError:
		return domainerrors.ErrNetwork.WithDetails(fmt.Sprintf("status %d", status))
	default:
		return domainerrors.ErrInternalError.WithDetails(fmt.Sprintf("unexpected status %d", status))
	}
}

// validationFromBody turns a field-keyed error body into a ValidationError.
// Bodies shaped {"detail": "..."}, {"error": "..."} or ["..."] land under the non-field key.
func validationFromBody(body []byte) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			field := key
			if key == "detail" || key == "error" || key == "message" {
				field = domainerrors.NonFieldKey
			}
			for _, msg := range messagesOf(fields[key]) {
				verr.Add(field, msg)
			}
		}
	} else {
		var list []any
		if err := json.Unmarshal(body, &list); err == nil {
			for _, msg := range messagesOf(list) {
				verr.Add(domainerrors.NonFieldKey, msg)
			}
		}
	}

	if !verr.HasErrors() {
		verr.Add(domainerrors.NonFieldKey, "request rejected")
	}

	return verr
}

func messagesOf(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, messagesOf(item)...)
		}

		return out
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make([]string, 0, len(val))
		for _, k := range keys {
			for _, msg := range messagesOf(val[k]) {
				out = append(out, k+": "+msg)
			}
		}

		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(val)}
	}
}

func detailOf(body []byte) string {
	var envelope struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	for _, s := range []string{envelope.Detail, envelope.Error, envelope.Message} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}

	return ""
}
