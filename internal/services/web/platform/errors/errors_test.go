package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: EK(KindInvalidInput, "", "bad"), want: http.StatusBadRequest},
		{name: "not found", err: EK(KindNotFound, "", "missing"), want: http.StatusNotFound},
		{name: "unavailable", err: EK(KindUnavailable, "", "down"), want: http.StatusServiceUnavailable},
		{name: "unknown kind", err: EK(KindUnknown, "", "odd"), want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("load: %w", EK(KindNotFound, "", "missing")), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("record not found")
	err := Wrap(KindNotFound, "web.blog.error.post_not_found", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(wrapped, cause) = false")
	}
	if got := KindOf(err); got != KindNotFound {
		t.Fatalf("KindOf() = %q, want %q", got, KindNotFound)
	}
	if got := LocalizationKey(err); got != "web.blog.error.post_not_found" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := err.Error(); got != "record not found" {
		t.Fatalf("Error() = %q, want cause text", got)
	}
	if Wrap(KindNotFound, "key", nil) != nil {
		t.Fatal("Wrap(nil) should stay nil")
	}
}

func TestKindOfUntypedIsUnknown(t *testing.T) {
	t.Parallel()

	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnknown)
	}
	if got := KindOf(Error{}); got != KindUnknown {
		t.Fatalf("KindOf(empty) = %q, want %q", got, KindUnknown)
	}
}

func TestLocalizationKeyTrimsAndHandlesUntyped(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, "  web.blog.notice_fill_all_fields ", "bad")); got != "web.blog.notice_fill_all_fields" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(untyped) = %q, want empty", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
}
