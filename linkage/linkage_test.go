package linkage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	parallelprobe "github.com/wippyai/parallel-probe"
)

func runProbe(t *testing.T, opts ...Option) []string {
	t.Helper()

	sink := parallelprobe.NewSink(nil)
	if err := New(opts...).Run(context.Background(), sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return sink.Lines()
}

func TestRun_FramesOutput(t *testing.T) {
	lines := runProbe(t, WithThreads(2))

	if !strings.HasPrefix(lines[0], "Guest module compiled: ") {
		t.Errorf("first line = %q, want compile report", lines[0])
	}
	if last := lines[len(lines)-1]; last != "Guest linkage verified" {
		t.Errorf("last line = %q, want verification line", last)
	}
}

func TestRun_EveryCallOnceWithCorrectSum(t *testing.T) {
	for _, threads := range []int{1, 3, 10} {
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			lines := runProbe(t, WithThreads(threads))

			seen := make(map[int]bool)
			for _, line := range lines {
				if !strings.HasPrefix(line, "Guest add from thread ") {
					continue
				}
				var worker, a, b, sum int
				if _, err := fmt.Sscanf(line, "Guest add from thread %d: %d + %d = %d", &worker, &a, &b, &sum); err != nil {
					t.Fatalf("parse %q: %v", line, err)
				}
				if a != worker {
					t.Errorf("line %q: first operand %d, want worker ID %d", line, a, worker)
				}
				if sum != a+b {
					t.Errorf("line %q: guest returned %d, want %d", line, sum, a+b)
				}
				if seen[b] {
					t.Errorf("index %d called more than once", b)
				}
				seen[b] = true
			}

			if len(seen) != Iterations {
				t.Fatalf("%d distinct indices called, want %d", len(seen), Iterations)
			}
			for i := 0; i < Iterations; i++ {
				if !seen[i] {
					t.Errorf("index %d never called", i)
				}
			}
		})
	}
}

func TestRun_SingleThreadAttribution(t *testing.T) {
	lines := runProbe(t, WithThreads(1))

	for _, line := range lines {
		if !strings.HasPrefix(line, "Guest add from thread ") {
			continue
		}
		var worker, a, b, sum int
		if _, err := fmt.Sscanf(line, "Guest add from thread %d: %d + %d = %d", &worker, &a, &b, &sum); err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if worker != 0 {
			t.Errorf("line %q attributed to worker %d, want 0", line, worker)
		}
	}
}

func TestRun_LineCount(t *testing.T) {
	lines := runProbe(t, WithThreads(4))

	// compile line + one line per guest call + verification line
	if want := 1 + Iterations + 1; len(lines) != want {
		t.Fatalf("emitted %d lines, want %d", len(lines), want)
	}
}
