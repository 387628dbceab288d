package smoke

import (
	"fmt"
	"strings"

	"github.com/wippyai/parallel-probe/errors"
)

// Report is the probe's output parsed back into structured form. It exists
// so callers can verify the run programmatically instead of scraping text.
type Report struct {
	// Threads is the announced thread count.
	Threads int
	// Hellos maps worker ID to the number of identity lines it emitted.
	Hellos map[int]int
	// Work maps loop index to the worker that processed it.
	Work map[int]int
	// Finished reports whether the completion line was present and last.
	Finished bool
}

// ParseReport reconstructs a Report from the probe's emitted lines.
// It fails on lines that match none of the probe's formats, on duplicate
// loop indices, and on a completion line that is not the final line.
func ParseReport(lines []string) (*Report, error) {
	if len(lines) == 0 {
		return nil, errors.InvalidInput(errors.PhaseRun, "no output lines")
	}

	r := &Report{
		Hellos: make(map[int]int),
		Work:   make(map[int]int),
	}

	for n, line := range lines {
		switch {
		case strings.HasPrefix(line, "Number of threads: "):
			if _, err := fmt.Sscanf(line, "Number of threads: %d", &r.Threads); err != nil {
				return nil, errors.Wrap(errors.PhaseRun, errors.KindInvalidInput, err, "parse thread count line")
			}
			if n != 0 {
				return nil, errors.Internal(errors.PhaseRun, "thread count on line %d, want first", n)
			}

		case strings.HasPrefix(line, "Hello World from master thread "):
			var id int
			if _, err := fmt.Sscanf(line, "Hello World from master thread %d", &id); err != nil {
				return nil, errors.Wrap(errors.PhaseRun, errors.KindInvalidInput, err, "parse identity line")
			}
			r.Hellos[id]++

		case strings.HasPrefix(line, "Hello World from thread "):
			var id, i int
			if _, err := fmt.Sscanf(line, "Hello World from thread %d, %d", &id, &i); err != nil {
				return nil, errors.Wrap(errors.PhaseRun, errors.KindInvalidInput, err, "parse work line")
			}
			if prev, dup := r.Work[i]; dup {
				return nil, errors.Internal(errors.PhaseRun, "index %d processed by workers %d and %d", i, prev, id)
			}
			r.Work[i] = id

		case line == "Finished":
			if n != len(lines)-1 {
				return nil, errors.Internal(errors.PhaseRun, "completion line on line %d of %d", n, len(lines))
			}
			r.Finished = true

		default:
			return nil, errors.Internal(errors.PhaseRun, "unrecognized line %q", line)
		}
	}

	return r, nil
}
