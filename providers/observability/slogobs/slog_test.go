package slogobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/leofalp/snipex/providers/observability"
)

func TestObserverLogsAttributes(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))
	ctx := context.Background()

	observer.Info(ctx, "extraction finished",
		observability.String(observability.AttrFormat, "json"),
		observability.String(observability.AttrStatus, "success"),
	)

	out := buf.String()
	if !strings.Contains(out, "extraction finished") {
		t.Errorf("log output missing message: %s", out)
	}
	if !strings.Contains(out, "extract.format=json") {
		t.Errorf("log output missing format attribute: %s", out)
	}
	if !strings.Contains(out, "extract.status=success") {
		t.Errorf("log output missing status attribute: %s", out)
	}
}

func TestObserverLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelWarn))
	ctx := context.Background()

	observer.Debug(ctx, "hidden debug")
	observer.Info(ctx, "hidden info")
	observer.Warn(ctx, "visible warn")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level leaked: %s", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestObserverWithExistingLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	observer := New(WithLogger(logger))

	observer.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON output from provided logger, got: %s", buf.String())
	}
}

func TestCounterAccumulates(t *testing.T) {
	observer := New(WithOutput(&bytes.Buffer{}), WithLevel(slog.LevelError))
	ctx := context.Background()

	counter := observer.Counter(observability.MetricExtractions)
	counter.Add(ctx, 1)
	counter.Add(ctx, 2)

	// Same name returns the same counter.
	observer.Counter(observability.MetricExtractions).Add(ctx, 3)

	if got := observer.CounterValue(observability.MetricExtractions); got != 6 {
		t.Errorf("CounterValue() = %d, want 6", got)
	}
	if got := observer.CounterValue("never.used"); got != 0 {
		t.Errorf("CounterValue(unused) = %d, want 0", got)
	}
}

func TestCounterConcurrentAdds(t *testing.T) {
	observer := New(WithOutput(&bytes.Buffer{}), WithLevel(slog.LevelError))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observer.Counter("parallel").Add(ctx, 1)
		}()
	}
	wg.Wait()

	if got := observer.CounterValue("parallel"); got != 50 {
		t.Errorf("CounterValue() = %d, want 50", got)
	}
}
