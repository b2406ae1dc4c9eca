// Package transform builds media CDN URLs carrying transformation directives.
//
// The CDN dialect is <scheme>://<host>/<account-id>/tr:<params>/<path>, where
// params is a comma-joined list of key-value directives.
package transform

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"simplesocial/internal/models"
)

const (
	// ImageParams leaves images untouched.
	ImageParams = ""
	// VideoParams letterboxes videos into 400x200 over a blurred fill.
	VideoParams = "w-400,h-200,cm-pad_resize,bg-blurred"

	overlayPrefix = "l-text,ie-"
	overlaySuffix = ",ly-N20,lx-20,fs-100,co-white,bg-000000A0,l-end"
)

type ValidationError struct {
	URL    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid media url %q: %s", e.URL, e.Reason)
}

// ParamsFor returns the transformation used when displaying a post of the given type.
func ParamsFor(fileType models.FileType) string {
	if fileType == models.FileTypeVideo {
		return VideoParams
	}
	return ImageParams
}

// EncodeOverlayText base64-encodes text and escapes the result so it can sit
// inside a transformation path segment.
func EncodeOverlayText(text string) string {
	if text == "" {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	return url.QueryEscape(encoded)
}

// OverlayDirective renders caption as a text layer 20px from the bottom-left corner.
func OverlayDirective(caption string) string {
	return overlayPrefix + EncodeOverlayText(caption) + overlaySuffix
}

// BuildURL returns originalURL with params inserted as a tr: segment after the
// account id. A non-empty caption replaces params with a text overlay.
func BuildURL(originalURL, params, caption string) (string, error) {
	if caption != "" {
		params = OverlayDirective(caption)
	}

	if params == "" {
		return originalURL, nil
	}

	u, err := url.Parse(originalURL)
	if err != nil {
		return "", &ValidationError{URL: originalURL, Reason: err.Error()}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &ValidationError{URL: originalURL, Reason: "scheme and host are required"}
	}

	path := strings.TrimPrefix(u.EscapedPath(), "/")
	account, filePath, found := strings.Cut(path, "/")
	if account == "" {
		return "", &ValidationError{URL: originalURL, Reason: "missing account id segment"}
	}
	if !found || filePath == "" {
		return "", &ValidationError{URL: originalURL, Reason: "missing file path after account id"}
	}

	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	if u.User != nil {
		b.WriteString(u.User.String())
		b.WriteString("@")
	}
	b.WriteString(u.Host)
	b.WriteString("/")
	b.WriteString(account)
	b.WriteString("/tr:")
	b.WriteString(params)
	b.WriteString("/")
	b.WriteString(filePath)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.EscapedFragment())
	}

	return b.String(), nil
}
