package cli

import (
	"errors"
	"testing"
)

func TestArgError_UnwrapsUnderlyingError(t *testing.T) {
	base := errors.New("missing --base")
	e := argError{base}
	if !errors.Is(e, base) {
		t.Fatalf("expected argError to unwrap to base error")
	}
	if e.Error() != base.Error() {
		t.Errorf("Error() = %q, want %q", e.Error(), base.Error())
	}
}
