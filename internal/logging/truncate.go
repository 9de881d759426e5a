package logging

import "fmt"

// MaxBodyLogLen bounds how much of an upstream response body is logged.
const MaxBodyLogLen = 512

// TruncateBody renders b for a log field, cutting it at MaxBodyLogLen bytes.
func TruncateBody(b []byte) string {
	if len(b) <= MaxBodyLogLen {
		return string(b)
	}
	return string(b[:MaxBodyLogLen]) + fmt.Sprintf("... [truncated, %d bytes total]", len(b))
}
