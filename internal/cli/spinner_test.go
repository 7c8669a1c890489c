package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := startSpinner(ctx, io.Discard, 100)
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsNotCancel(t *testing.T) {
	s := startSpinner(context.Background(), io.Discard, 100)
	s.Stop()
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerShowsLayer(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, 100)
	s.Layer(3, 22)
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if want := "Enumerating radius 3, 22/100 elements"; !strings.Contains(out, want) {
		t.Errorf("output %q does not contain %q", out, want)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("output %q does not end with a cleared line", out)
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, 100)
	s.StopWithError("Canceled")

	if want := iconError + " Canceled"; !strings.Contains(buf.String(), want) {
		t.Errorf("output %q does not contain %q", buf.String(), want)
	}
}
