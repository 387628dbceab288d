package runtime

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/parallel-probe/errors"
)

func TestRegistry_AddAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(&stubProbe{name: "smoke"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, err := reg.Get("smoke")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name() != "smoke" {
		t.Errorf("probe name = %q, want smoke", p.Name())
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	reg := NewRegistry()

	err := reg.Add(&stubProbe{name: ""})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindInvalidInput}) {
		t.Errorf("error = %v, want register/invalid_input", err)
	}
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(&stubProbe{name: "smoke"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := reg.Add(&stubProbe{name: "smoke"})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindAlreadyExists}) {
		t.Errorf("error = %v, want register/already_exists", err)
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d probes, want 1", reg.Len())
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"linkage", "smoke", "affinity"} {
		if err := reg.Add(&stubProbe{name: name}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	infos := reg.List()
	want := []string{"affinity", "linkage", "smoke"}
	if len(infos) != len(want) {
		t.Fatalf("got %d probes, want %d", len(infos), len(want))
	}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("list[%d] = %q, want %q", i, info.Name, want[i])
		}
		if info.Description == "" {
			t.Errorf("list[%d] has empty description", i)
		}
	}
}
