package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	if c := Code(nil); c != NOERROR {
		t.Errorf("code of nil error = %d, want %d", c, NOERROR)
	}
	if c := Code(errors.New("plain")); c != EINTERNAL {
		t.Errorf("code of plain error = %d, want %d", c, EINTERNAL)
	}
	err := Error(ERANGE, "index %d too large", 7)
	if c := Code(err); c != ERANGE {
		t.Errorf("code = %d, want %d", c, ERANGE)
	}
	if m := UserMessage(err); m != "index 7 too large" {
		t.Errorf("user message = %q", m)
	}
}

func TestWrappedErrorKeepsChain(t *testing.T) {
	base := errors.New("corrupt GSUB")
	err := WrapError(base, ESHAPING, "cannot shape run")
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, base) {
		t.Errorf("expected base error in chain")
	}
	if c := Code(wrapped); c != ESHAPING {
		t.Errorf("code = %d, want %d", c, ESHAPING)
	}
	if m := UserMessage(errors.New("x")); m != "internal error" {
		t.Errorf("fallback user message = %q", m)
	}
	if e := ErrorWithCode(nil, ECONFIG); e.Error() != "[126] configuration error" {
		t.Errorf("unexpected error text %q", e.Error())
	}
}
