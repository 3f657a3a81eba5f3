package utils

import (
	"regexp"
	"strings"
	"sync"
)

// semVerPattern is the semver.org 2.0.0 grammar without anchors.
const semVerPattern = `(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`

var semVerRegexps sync.Map // prefix -> *regexp.Regexp

func semVerRegexp(prefix string) *regexp.Regexp {
	if re, ok := semVerRegexps.Load(prefix); ok {
		return re.(*regexp.Regexp)
	}

	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + semVerPattern + `$`)
	actual, _ := semVerRegexps.LoadOrStore(prefix, re)
	return actual.(*regexp.Regexp)
}

// IsSemanticVersion reports whether s is a semantic version preceded by the
// literal prefix, e.g. IsSemanticVersion("v1.2.3", "v").
func IsSemanticVersion(s, prefix string) bool {
	return semVerRegexp(prefix).MatchString(s)
}

// RemoveBasePathFromPathname strips basePath from the start of pathname.
// The result always begins with "/".
//
//	RemoveBasePathFromPathname("/wallet/v1.0.0/", "/wallet/") // "/v1.0.0/"
//	RemoveBasePathFromPathname("/accounts", "/wallet/")       // "/accounts"
func RemoveBasePathFromPathname(pathname, basePath string) string {
	rest := strings.TrimPrefix(pathname, basePath)
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}

	return rest
}
