package model

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Tag path segment patterns, tested in order. First match wins.
var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/tags/([^/]+)/`),
	regexp.MustCompile(`/tag/([^/]+)/`),
	regexp.MustCompile(`/refs/tags/([^/]+)/`),
}

// ExtractVersionToken returns the version token embedded in the URL's tag
// path segment, or types.UnknownVersionToken when no pattern matches.
func ExtractVersionToken(rawURL string) string {
	for _, re := range versionPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return types.UnknownVersionToken
}

// DeriveFilename computes the local filename for a fetched resource.
// An override name is used verbatim. Otherwise the final URL path segment is
// taken and `_<token>` is spliced in before the extension (split at the last
// period), or appended when the segment has no period.
func DeriveFilename(rawURL, override, token string) (string, error) {
	if override != "" {
		return override, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid resource URL", goerr.V("url", rawURL))
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return "", goerr.New("URL has no file path segment", goerr.V("url", rawURL))
	}

	if idx := strings.LastIndex(base, "."); idx >= 0 {
		return base[:idx] + "_" + token + base[idx:], nil
	}
	return base + "_" + token, nil
}
