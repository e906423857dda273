package log

import (
	"fmt"
	"sync"
)

// MockLogger keeps the logged lines in memory
type MockLogger struct {
	sync.Mutex
	Lines []string
}

func (l *MockLogger) add(level string, s string) {
	l.Lock()
	l.Lines = append(l.Lines, level+" "+s)
	l.Unlock()
}

// Debug log debug line
func (l *MockLogger) Debug(v ...interface{}) { l.add("DEBUG", fmt.Sprint(v...)) }

// Debugf log debug line
func (l *MockLogger) Debugf(format string, v ...interface{}) {
	l.add("DEBUG", fmt.Sprintf(format, v...))
}

// Info log info line
func (l *MockLogger) Info(v ...interface{}) { l.add("INFO", fmt.Sprint(v...)) }

// Infof log info line
func (l *MockLogger) Infof(format string, v ...interface{}) {
	l.add("INFO", fmt.Sprintf(format, v...))
}

// Warn log warn line
func (l *MockLogger) Warn(v ...interface{}) { l.add("WARN", fmt.Sprint(v...)) }

// Warnf log warn line
func (l *MockLogger) Warnf(format string, v ...interface{}) {
	l.add("WARN", fmt.Sprintf(format, v...))
}

// Error log error line
func (l *MockLogger) Error(v ...interface{}) { l.add("ERROR", fmt.Sprint(v...)) }

// Errorf log error line
func (l *MockLogger) Errorf(format string, v ...interface{}) {
	l.add("ERROR", fmt.Sprintf(format, v...))
}

// Count returns the count of lines with the level
func (l *MockLogger) Count(level string) int {
	l.Lock()
	defer l.Unlock()
	n := 0
	for _, s := range l.Lines {
		if len(s) > len(level) && s[:len(level)] == level && s[len(level)] == ' ' {
			n++
		}
	}
	return n
}
