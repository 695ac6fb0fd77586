package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestErrorMessageAndWrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeUnknown, "compute failed")

	if err.Error() != "compute failed: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if Root(err) != cause {
		t.Fatalf("Root should return the deepest cause")
	}
	e, ok := As(err)
	if !ok || e.Unwrap() != cause {
		t.Fatalf("As/Unwrap mismatch")
	}
}

func TestCodesAndHTTPMapping(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
		http int
	}{
		{InvalidArgf("emitter flow must be positive"), ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{Validationf("spacing out of range"), ErrorCodeValidation, http.StatusBadRequest},
		{JSONErrf("bad payload"), ErrorCodeJSON, http.StatusBadRequest},
		{NotFoundf("no such variant"), ErrorCodeNotFound, http.StatusNotFound},
		{PanicErrf("recovered"), ErrorCodePanic, http.StatusInternalServerError},
		{Internalf("whoops"), ErrorCodeUnknown, http.StatusInternalServerError},
		{stderrs.New("foreign"), ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.code {
			t.Fatalf("CodeOf(%v) = %d, want %d", c.err, got, c.code)
		}
		if got := HTTPStatus(c.err); got != c.http {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.http)
		}
		if !IsCode(c.err, c.code) {
			t.Fatalf("IsCode(%v, %d) = false", c.err, c.code)
		}
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := InvalidArgf("must be positive")
	withField := WithField(base, "emitter_flow")

	be, _ := As(base)
	fe, _ := As(withField)
	if be.Field() != "" {
		t.Fatalf("original error mutated: field=%q", be.Field())
	}
	if fe.Field() != "emitter_flow" {
		t.Fatalf("field not attached: %q", fe.Field())
	}

	// foreign errors pass through unchanged
	foreign := stderrs.New("foreign")
	if WithField(foreign, "x") != foreign {
		t.Fatalf("foreign error should be returned unchanged")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v, want zero wire", w)
	}

	err := WithField(Validationf("lateral_length must be at least 1"), "lateral_length")
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "lateral_length" {
		t.Fatalf("WireFrom = %+v", w)
	}

	status, wire := HTTP(err)
	if status != http.StatusBadRequest || wire.Message == "" {
		t.Fatalf("HTTP = %d %+v", status, wire)
	}
}
