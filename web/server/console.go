package server

import (
	"fmt"
	"log"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RequestLogger implements core.Logger by writing to the server log,
// tagging every line with the render ID
type RequestLogger struct {
	renderID string
	output   func(string)
}

// NewRequestLogger creates a new logger for a specific render
func NewRequestLogger(renderID string) core.Logger {
	return &RequestLogger{
		renderID: renderID,
		output: func(message string) {
			log.Print(message)
		},
	}
}

// Printf implements core.Logger interface
func (rl *RequestLogger) Printf(format string, args ...interface{}) {
	rl.output(fmt.Sprintf("[%s] ", rl.renderID) + fmt.Sprintf(format, args...))
}
