package blogsdk

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// APIError is returned for any response with an unexpected status code.
type APIError struct {
	StatusCode int

	// Errors is the decoded {"errors":{...}} body. It is empty when the
	// body had another shape.
	Errors map[string]string

	// Body holds the raw response when it could not be decoded.
	Body string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		if e.Body != "" {
			return fmt.Sprintf("blog api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
		}
		return fmt.Sprintf("blog api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	parts := make([]string, 0, len(e.Errors))
	for _, k := range slices.Sorted(maps.Keys(e.Errors)) {
		parts = append(parts, k+" "+e.Errors[k])
	}
	return fmt.Sprintf("blog api: %d: %s", e.StatusCode, strings.Join(parts, ", "))
}

// parseErrorResponse builds an APIError from a failed response body.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && len(er.Errors) > 0 {
		apiErr.Errors = er.Errors
		return apiErr
	}

	apiErr.Body = strings.TrimSpace(string(body))
	return apiErr
}
