// Package common provides shared HTTP utility functions for API handlers.
package common

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// GetAndValidateURLParam extracts and decodes a chi URL parameter. The
// decoded value must be non-empty and contain no whitespace.
func GetAndValidateURLParam(r *http.Request, paramName string) (string, error) {
	decoded, err := url.PathUnescape(chi.URLParam(r, paramName))
	if err != nil {
		return "", fmt.Errorf("invalid URL encoding in %s", paramName)
	}

	if strings.TrimSpace(decoded) == "" {
		return "", fmt.Errorf("%s cannot be empty", paramName)
	}

	if strings.ContainsAny(decoded, " \t\n\r") {
		return "", fmt.Errorf("%s cannot contain whitespace", paramName)
	}

	return decoded, nil
}

// QueryTags returns every value of the repeated query parameter name. Values
// may also be comma separated.
func QueryTags(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}
	}
	return out
}
