package batch

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
)

func TestProcessKeepsInputOrder(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%d", i)
	}

	results, err := Process(context.Background(), lines, 8, func(line string) (string, error) {
		return strings.ToUpper(line), nil
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(results) != len(lines) {
		t.Fatalf("results = %d; want %d", len(results), len(lines))
	}
	for i, r := range results {
		if r.Index != i || r.Line != lines[i] {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if r.Output != strings.ToUpper(lines[i]) {
			t.Errorf("result %d output = %q", i, r.Output)
		}
	}
}

func TestProcessRecordsPerLineErrors(t *testing.T) {
	lines := []string{"good", "bad", "good"}
	results, err := Process(context.Background(), lines, 2, func(line string) (string, error) {
		if line == "bad" {
			return "", fmt.Errorf("rejected")
		}
		return line, nil
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("good lines should not carry errors")
	}
	if results[1].Err == nil {
		t.Error("bad line should carry its error")
	}
}

func TestProcessSingleWorkerFloor(t *testing.T) {
	var calls int32
	results, err := Process(context.Background(), []string{"a", "b"}, 0, func(line string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return line, nil
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(results) != 2 || atomic.LoadInt32(&calls) != 2 {
		t.Errorf("results = %d, calls = %d; want 2, 2", len(results), calls)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	results, err := Process(context.Background(), nil, 4, func(line string) (string, error) {
		return line, nil
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d; want 0", len(results))
	}
}

func TestProcessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines := make([]string, 10000)
	_, err := Process(ctx, lines, 1, func(line string) (string, error) {
		return line, nil
	})
	if err == nil {
		t.Error("expected cancellation error")
	}
}
