package router

import (
	"net/url"
	"strings"
)

// Match is the ephemeral result of resolving a navigable location: the
// primary route path, any trailing path segments, and the query parameters.
// It is recomputed on every navigation signal and never stored.
type Match struct {
	// Path is the normalized primary path, e.g. "/patients".
	Path string

	// Extra holds the trailing segments after the primary path,
	// e.g. ["7"] for "/patients/7".
	Extra []string

	// Query holds the parsed query parameters.
	Query url.Values
}

// parseLocation parses a fragment-style location such as
// "#/patients/7?tab=vitals" into a Match. A leading "#" is optional; an empty
// location resolves to "/".
func parseLocation(location string) Match {
	location = strings.TrimPrefix(location, "#")

	rawQuery := ""
	if idx := strings.IndexByte(location, '?'); idx != -1 {
		rawQuery = location[idx+1:]
		location = location[:idx]
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	segments := splitPath(location)
	if len(segments) == 0 {
		return Match{Path: "/", Query: query}
	}

	return Match{
		Path:  "/" + segments[0],
		Extra: segments[1:],
		Query: query,
	}
}

// splitPath splits a path into segments, dropping empty ones.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
