package gcs

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"gs://statements/chase_checking_1234.pdf", "chase_checking_1234.pdf"},
		{"gs://statements/2024/01/statement.pdf", "statement.pdf"},
		{"gs://statements", "statements"},
		{"plain-name.pdf", "plain-name.pdf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.uri); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestParseURI(t *testing.T) {
	bucket, object, err := parseURI("gs://statements/2024/statement.pdf")
	if err != nil {
		t.Fatalf("parseURI: %v", err)
	}
	if bucket != "statements" || object != "2024/statement.pdf" {
		t.Errorf("parseURI = (%q, %q)", bucket, object)
	}

	for _, uri := range []string{"statements/file.pdf", "gs://bucket-only", "gs://bucket/"} {
		if _, _, err := parseURI(uri); err == nil {
			t.Errorf("parseURI(%q) should fail", uri)
		}
	}
}
