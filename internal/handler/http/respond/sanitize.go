package respond

import (
	"regexp"
)

var (
	// API key patterns. The Anthropic pattern must run first: it is the
	// more specific of the two.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Credentials embedded in a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// ValueSerp keys travel as a query parameter.
	serpKeyPattern = regexp.MustCompile(`api_key=[^&\s]+`)
)

// SanitizeError returns the error message with secrets masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = serpKeyPattern.ReplaceAllString(msg, "api_key=****")

	return msg
}
