package utils

import (
	"fmt"
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Message should be a summary, never a full upstream payload.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogError is LogEvent for failures; the error text is appended as err=.
func LogError(requestID, module, action string, err error) {
	LogEvent(requestID, module, action, fmt.Sprintf("err=%q", errString(err)))
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
