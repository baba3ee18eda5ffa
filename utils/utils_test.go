package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 5*time.Second, "2m:5s"},
		{time.Hour + 3*time.Minute + 9*time.Second, "1h:3m:9s"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestInSlice(t *testing.T) {
	exts := []string{".jpg", ".png"}
	if !InSlice(".png", exts) {
		t.Error("expected .png to be found")
	}
	if InSlice(".gif", exts) {
		t.Error("did not expect .gif to be found")
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://example.com/a.jpg") {
		t.Error("expected an url")
	}
	if IsURL("images/a.jpg") {
		t.Error("a relative path is not an url")
	}
}

func TestSpinner_ShouldPrintStopMessage(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("rendering...", time.Millisecond)
	s.writer = &buf
	s.StopMsg = "done\n"

	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "rendering...") {
		t.Errorf("expected the spinner message in %q", out)
	}
	if !strings.HasSuffix(out, "done\n") {
		t.Errorf("expected the stop message at the end of %q", out)
	}
}
