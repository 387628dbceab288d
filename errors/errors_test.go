package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := NotFound(PhaseRun, "smoke")

	msg := err.Error()
	if !strings.HasPrefix(msg, "[run] not_found") {
		t.Errorf("unexpected prefix: %q", msg)
	}
	if !strings.Contains(msg, "probe smoke") {
		t.Errorf("probe name missing: %q", msg)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Link("instantiate guest", cause)

	msg := err.Error()
	if !strings.Contains(msg, "instantiate guest") {
		t.Errorf("detail missing: %q", msg)
	}
	if !strings.Contains(msg, "caused by: boom") {
		t.Errorf("cause missing: %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Registration("smoke", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestError_IsMatchesPhaseAndKind(t *testing.T) {
	err := NotFound(PhaseRun, "smoke")

	if !stderrors.Is(err, &Error{Phase: PhaseRun, Kind: KindNotFound}) {
		t.Error("expected match on same phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseRegister, Kind: KindNotFound}) {
		t.Error("expected no match on different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseRun, Kind: KindCanceled}) {
		t.Error("expected no match on different kind")
	}
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("linkage")

	if err.Phase != PhaseRegister || err.Kind != KindAlreadyExists {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if !strings.Contains(err.Error(), "probe linkage") {
		t.Errorf("probe name missing: %q", err.Error())
	}
}

func TestInternal_Formats(t *testing.T) {
	err := Internal(PhaseRun, "worker %d out of range", 7)

	if want := "worker 7 out of range"; !strings.Contains(err.Error(), want) {
		t.Errorf("formatted detail missing %q: %q", want, err.Error())
	}
}
