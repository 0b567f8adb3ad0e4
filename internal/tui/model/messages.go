package model

import (
	"lon/pkg/logging"
)

// ClearStatusBarMsg clears the toast once its timeout passes.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
