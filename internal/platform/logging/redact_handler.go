package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// log. The request logging middleware reads the same map when it dumps
// headers.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
}

var (
	secretFields   = []string{"password", "secret", "token"}
	secretPrefixes = []string{"secret_", "api_key"}

	// Values that leak into free-form attributes such as error strings or
	// raw upstream bodies. JWT segments must be at least 10 characters so
	// version strings like 1.2.3 pass through.
	secretValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	}
)

// redactor builds the slog ReplaceAttr hook that masks credentials by
// attribute name, name prefix and value pattern.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
