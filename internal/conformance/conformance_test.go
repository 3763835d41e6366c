package conformance

import "testing"

func TestConformance(t *testing.T) {
	scenarios, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("failed to load scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			got, err := Run(s)
			if s.ExpectErrorKind != "" {
				if err == nil {
					t.Fatalf("expected a %s error, got result %q", s.ExpectErrorKind, got)
				}
				if kind := ErrorKind(err); kind != s.ExpectErrorKind {
					t.Errorf("error kind = %q, want %q (error: %v)", kind, s.ExpectErrorKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != s.ExpectInspect {
				t.Errorf("got %q, want %q", got, s.ExpectInspect)
			}
		})
	}
}
