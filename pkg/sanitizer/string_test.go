package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain string unchanged",
			input:    "Juan Perez",
			expected: "Juan Perez",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  Corte de pelo  ",
			expected: "Corte de pelo",
		},
		{
			name:     "internal whitespace collapsed",
			input:    "Juan   \t Perez",
			expected: "Juan Perez",
		},
		{
			name:     "whitespace only becomes empty",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "newlines become single spaces",
			input:    "Corte\nde\npelo",
			expected: "Corte de pelo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Ana  Maria "); got != "Ana Maria" {
		t.Errorf("NormalizeName() = %q, want %q", got, "Ana Maria")
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel(" Corte  Premium "); got != "Corte Premium" {
		t.Errorf("NormalizeLabel() = %q, want %q", got, "Corte Premium")
	}
}
