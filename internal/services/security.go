package services

import (
	"fmt"
	"log"
	"os"
	"time"
)

// SecurityLogger appends admin authentication events to a local log
// file. Failures to open or write the file are logged and swallowed.
type SecurityLogger struct {
	file *os.File
}

// NewSecurityLogger opens (or creates) security.log for appending.
func NewSecurityLogger() *SecurityLogger {
	file, err := os.OpenFile("security.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("SecurityLogger - could not open security.log: %v", err)
		return &SecurityLogger{}
	}
	return &SecurityLogger{file: file}
}

// LogEvent records a security event with its source IP.
func (sl *SecurityLogger) LogEvent(eventType, details, ipAddress string) {
	if sl.file == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] %s - %s - IP: %s\n", timestamp, eventType, details, ipAddress)
	if _, err := sl.file.WriteString(entry); err != nil {
		log.Printf("SecurityLogger - write failed: %v", err)
	}
}

// Close closes the underlying log file.
func (sl *SecurityLogger) Close() {
	if sl.file != nil {
		sl.file.Close()
	}
}
