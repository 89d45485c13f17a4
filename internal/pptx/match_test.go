package pptx

import "testing"

func TestParseMatchBy(t *testing.T) {
	for _, input := range []string{"hash", "filename", "size", "HASH", "Size"} {
		if _, err := ParseMatchBy(input); err != nil {
			t.Errorf("ParseMatchBy(%q): %v", input, err)
		}
	}

	if _, err := ParseMatchBy("fuzzy"); err == nil {
		t.Fatal("expected error for unknown match method")
	}
}

func TestNewCriterionSizeRejectsNonInteger(t *testing.T) {
	if _, err := NewCriterion(MatchBySize, "15234x"); err == nil {
		t.Fatal("expected error for non-integer size target")
	}
}

func TestCriterionMatches(t *testing.T) {
	fp := Fingerprint{
		Filename: "logo.png",
		Size:     15234,
		Hash:     "a1b2c3d4e5f67890abcdef1234567890",
	}

	cases := []struct {
		name   string
		by     MatchBy
		target string
		want   bool
	}{
		{"hash match", MatchByHash, "a1b2c3d4e5f67890abcdef1234567890", true},
		{"hash uppercase target", MatchByHash, "A1B2C3D4E5F67890ABCDEF1234567890", true},
		{"hash mismatch", MatchByHash, "00000000000000000000000000000000", false},
		{"filename match", MatchByFilename, "logo.png", true},
		{"filename is case-sensitive", MatchByFilename, "Logo.png", false},
		{"filename mismatch", MatchByFilename, "other.png", false},
		{"size match", MatchBySize, "15234", true},
		{"size mismatch", MatchBySize, "15235", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			crit, err := NewCriterion(tc.by, tc.target)
			if err != nil {
				t.Fatalf("NewCriterion: %v", err)
			}
			if got := crit.Matches(fp); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}
