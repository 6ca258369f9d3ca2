package response

import "github.com/gin-gonic/gin"

// The API envelope is {"success": bool, ...payload} on success and
// {"success": false, "error": msg} on failure; payload keys sit at the top
// level, mirroring what the frontend already consumes.

// OK wraps payload in a success envelope.
func OK(payload gin.H) gin.H {
	out := gin.H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// Err wraps a human-readable message in a failure envelope.
func Err(msg string) gin.H {
	return gin.H{"success": false, "error": msg}
}
