package export

import (
	"bytes"
	"strings"
	"testing"

	"driptime/internal/core/hydraulic"
	"driptime/internal/platform/testkit"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	sr := hydraulic.OutletSegments(hydraulic.DefaultParams())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sr.Segments); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	testkit.MustContain(t, out, "outlets,long_acum,q_tramo,v_tramo,t_tramo,t_acum,headloss,HL_acum")

	got, err := ReadCSV(strings.NewReader(out))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(sr.Segments) {
		t.Fatalf("rows = %d, want %d", len(got), len(sr.Segments))
	}
	for i := range got {
		if got[i].Outlet != sr.Segments[i].Outlet {
			t.Fatalf("row %d outlet = %d, want %d", i, got[i].Outlet, sr.Segments[i].Outlet)
		}
		testkit.CloseToRel(t, got[i].CumTime, sr.Segments[i].CumTime, 1e-12)
		testkit.CloseToRel(t, got[i].CumHeadLoss, sr.Segments[i].CumHeadLoss, 1e-12)
	}
}

func TestReadCSVRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ReadCSV(strings.NewReader("a,b\n1,2\n")); err == nil {
		t.Error("expected error for wrong column count")
	}
	bad := "outlets,long_acum,q_tramo,v_tramo,t_tramo,t_acum,headloss,HL_acum\nx,1,1,1,1,1,1,1\n"
	if _, err := ReadCSV(strings.NewReader(bad)); err == nil {
		t.Error("expected error for non-numeric outlet")
	}
}
