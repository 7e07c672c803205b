package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryInt reads an integer query parameter, falling back to the default on
// anything non-numeric. Pagination input never fails a request; it is
// clamped downstream instead.
func QueryInt(r *http.Request, key string, defaultVal int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return value
}
