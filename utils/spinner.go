package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner is a terminal progress indicator.
type Spinner struct {
	mu         sync.Mutex
	writer     io.Writer
	message    string
	lastOutput string
	delay      time.Duration
	stopChan   chan struct{}
	done       chan struct{}

	// StopMsg is printed once the spinner stops.
	StopMsg string
}

// NewSpinner instantiates a new Spinner writing to stderr.
func NewSpinner(message string, d time.Duration) *Spinner {
	return &Spinner{
		writer:  os.Stderr,
		message: message,
		delay:   d,
	}
}

// Start starts the process indicator.
func (s *Spinner) Start() {
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					s.lastOutput = fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
					fmt.Fprint(s.writer, s.lastOutput)
					s.mu.Unlock()
					time.Sleep(s.delay)
				}
			}
		}
	}()
}

// Stop stops the process indicator and prints StopMsg.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.done
	s.stopChan = nil

	s.mu.Lock()
	defer s.mu.Unlock()

	n := utf8.RuneCountInString(s.lastOutput)
	fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
	s.lastOutput = ""
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}
