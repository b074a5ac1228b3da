package http

import (
	"fmt"
	"net/http"
	"strconv"

	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
)

// ExtractPageLimit reads the 1-indexed page number and page size from the
// query string, normalizing out-of-range values.
func ExtractPageLimit(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	page := 1
	if s := query.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid page parameter: %s", s))
		}
		page = v
	}

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", s))
		}
		limit = v
	}

	return config.NormalizePage(page), config.NormalizeLimit(limit), nil
}
