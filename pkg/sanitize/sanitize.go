// Package sanitize strips or escapes unsafe content from user-supplied
// strings before they are persisted.
package sanitize

import (
	"regexp"
	"strings"
)

// Mode selects the sanitization applied to a field.
type Mode int

const (
	// ModeText HTML-escapes the value for plain text fields.
	ModeText Mode = iota
	// ModeRichText strips script blocks, event handlers and javascript:
	// schemes but preserves other markup.
	ModeRichText
	// ModeURL allows only http, https and relative URLs; anything else
	// becomes the empty string.
	ModeURL
	// ModeSkip passes the value through unchanged. Used for fields whose
	// final value is computed after sanitization, such as generated names.
	ModeSkip
)

var (
	scriptBlocks       = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	quotedHandlers     = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	bareHandlers       = regexp.MustCompile(`(?i)on\w+\s*=\s*[^\s>]*`)
	jsScheme           = regexp.MustCompile(`(?i)javascript:`)
	dangerousProtocols = regexp.MustCompile(`(?i)^(javascript|data|vbscript):`)
	safeProtocols      = regexp.MustCompile(`(?i)^(https?://|/)`)
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Clean applies the given mode to s.
func Clean(mode Mode, s string) string {
	switch mode {
	case ModeText:
		return Text(s)
	case ModeRichText:
		return RichText(s)
	case ModeURL:
		return URL(s)
	default:
		return s
	}
}

// Text escapes HTML entities for plain text fields.
func Text(s string) string {
	return strings.TrimSpace(textEscaper.Replace(s))
}

// RichText removes script tags, inline event handlers and javascript:
// scheme occurrences while preserving other formatting.
func RichText(s string) string {
	s = scriptBlocks.ReplaceAllString(s, "")
	s = quotedHandlers.ReplaceAllString(s, "")
	s = bareHandlers.ReplaceAllString(s, "")
	s = jsScheme.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// URL rejects javascript:, data: and vbscript: schemes and anything that is
// not an http(s) or relative URL, returning "" for rejected values.
func URL(s string) string {
	if dangerousProtocols.MatchString(s) {
		return ""
	}
	if !safeProtocols.MatchString(s) && strings.TrimSpace(s) != "" {
		return ""
	}
	return strings.TrimSpace(s)
}
