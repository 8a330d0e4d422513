package lsp

import (
	"net/url"
	"path/filepath"
)

// uriToPath maps a file:// URI to a local path. Other schemes give "".
func uriToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	switch parsed.Scheme {
	case "file":
		return filepath.FromSlash(parsed.Path)
	case "":
		return filepath.FromSlash(uri)
	default:
		return ""
	}
}

// displayPath is the name a document gets inside a FileSet.
func displayPath(uri string) string {
	if p := uriToPath(uri); p != "" {
		return p
	}
	return uri
}
