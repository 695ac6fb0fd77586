package raw

import "testing"

func TestGetDefaultsAndValues(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q, want fallback", got)
	}

	t.Setenv("RAWTEST_NAME", "  lateral  ")
	if got := c.Get("NAME", ""); got != "lateral" {
		t.Fatalf("Get = %q, want trimmed value", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"no", true, false},
		{"0", true, false},
	}
	for _, tc := range cases {
		t.Setenv("RAWTEST_FLAG", tc.val)
		if got := c.GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWTEST_")

	t.Setenv("RAWTEST_N", "100")
	if got := c.GetInt("N", 5); got != 100 {
		t.Fatalf("GetInt = %d, want 100", got)
	}

	t.Setenv("RAWTEST_N", "segments")
	if got := c.GetInt("N", 5); got != 5 {
		t.Fatalf("GetInt with junk = %d, want default 5", got)
	}

	t.Setenv("RAWTEST_N", "-3")
	if got := c.GetInt("N", 5); got != 5 {
		t.Fatalf("GetInt negative = %d, want default 5", got)
	}
}
