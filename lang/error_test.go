package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", NewError("bad"), "bad"},
		{"wrapped", NewError("bad").Wrap(errors.New("cause")), "bad: cause"},
		{"bare", WrapError(errors.New("cause")), "cause"},
		{"attrs do not change text", NewError("bad").With(slog.Int("n", 1)), "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("cause")
	err := ErrReadInput.Wrap(cause).With(slog.String("path", "Procfile"))

	if !errors.Is(err, ErrReadInput) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("derived error should match its cause")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("derived error should not match an unrelated sentinel")
	}

	if errors.Is(ErrReadInput, err) {
		t.Error("sentinel should not match a derived error")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !errors.Is(wrapped, ErrReadInput) {
		t.Error("fmt-wrapped error should match the sentinel")
	}
}

func TestError_WithDoesNotMutate(t *testing.T) {
	base := NewError("base").With(slog.Int("a", 1))
	_ = base.With(slog.Int("b", 2))

	if n := len(base.Attrs()); n != 1 {
		t.Errorf("receiver has %d attrs, want 1", n)
	}

	if n := len(ErrDecode.Attrs()); n != 0 {
		t.Errorf("sentinel has %d attrs, want 0", n)
	}
}

func TestWrapError(t *testing.T) {
	orig := ErrFilterCompile.With(slog.String("filter", "x"))

	if got := WrapError(fmt.Errorf("outer: %w", orig)); got != orig {
		t.Errorf("WrapError returned %p, want existing *Error %p", got, orig)
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrReadInput.Wrap(errors.New("cause")).With(slog.String("path", "p"))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue kind = %v, want group", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error": "failed to read input",
		"cause": "cause",
		"path":  "p",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("attr %q = %q, want %q", k, got[k], w)
		}
	}
}

func TestMalformedLineError(t *testing.T) {
	err := &MalformedLineError{Line: 4, Text: `web rails`}

	if want := `line 4: malformed procfile line "web rails"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrMalformedLine) {
		t.Error("should match ErrMalformedLine")
	}

	if errors.Is(err, ErrValidation) {
		t.Error("should not match ErrValidation")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Messages: []string{"Line 2: a.", "Line 3: b."}}

	if want := "invalid procfile: Line 2: a. Line 3: b."; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrValidation) {
		t.Error("should match ErrValidation")
	}

	v := err.LogValue()
	if v.Kind() != slog.KindGroup || len(v.Group()) != 2 {
		t.Errorf("unexpected LogValue %v", v)
	}
}
