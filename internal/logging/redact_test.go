package logging

import (
	"testing"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single address",
			input:    "from sarah.chen@acme.io",
			expected: "from s***@acme.io",
		},
		{
			name:     "two addresses",
			input:    "a@b.co, marcus@studio.dev",
			expected: "a***@b.co, m***@studio.dev",
		},
		{
			name:     "No sensitive data",
			input:    "Hello world, this is a test",
			expected: "Hello world, this is a test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Redact(tt.input)
			if result != tt.expected {
				t.Errorf("Redact() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRedactAddressWithoutLocalPart(t *testing.T) {
	if got := RedactAddress("@acme.io"); got != "@acme.io" {
		t.Errorf("RedactAddress() = %q", got)
	}
	if got := RedactAddress("plain"); got != "plain" {
		t.Errorf("RedactAddress() = %q", got)
	}
}

func TestRedactLink(t *testing.T) {
	got := RedactLink("https://zoom.us/j/123?pwd=abc123&lang=en")
	want := "https://zoom.us/j/123?lang=en&pwd=%5BREDACTED%5D"
	if got != want {
		t.Errorf("RedactLink() = %q, want %q", got, want)
	}

	plain := "https://meet.google.com/abc-defg-hij"
	if got := RedactLink(plain); got != plain {
		t.Errorf("RedactLink() changed a link without secrets: %q", got)
	}
}

func TestIsSensitiveParam(t *testing.T) {
	tests := []struct {
		name      string
		sensitive bool
	}{
		{"pwd", true},
		{"Passcode", true},
		{"access_token", true},
		{"lang", false},
		{"meeting", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSensitiveParam(tt.name); got != tt.sensitive {
				t.Errorf("IsSensitiveParam(%q) = %v, want %v", tt.name, got, tt.sensitive)
			}
		})
	}
}
