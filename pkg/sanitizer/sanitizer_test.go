package sanitizer

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Jane   Doe ", "Jane Doe"},
		{"Jane\tDoe", "Jane Doe"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  Jane@Example.COM "); got != "jane@example.com" {
		t.Errorf("Email() = %q", got)
	}
}

func TestPhone(t *testing.T) {
	if got := Phone(" +250 798 287 944 "); got != "+250798287944" {
		t.Errorf("Phone() = %q", got)
	}
}

func TestText(t *testing.T) {
	if got := Text("  hello\nworld  "); got != "hello\nworld" {
		t.Errorf("Text() = %q", got)
	}
}
