package clean

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain passthrough",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n {\"a\": 1} \t\n",
			want:  `{"a": 1}`,
		},
		{
			name:  "json code fence",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare code fence",
			input: "```\n[1, 2]\n```",
			want:  `[1, 2]`,
		},
		{
			name:  "fence without trailing marker",
			input: "```json\n{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "outer double quotes",
			input: `"{}"`,
			want:  `{}`,
		},
		{
			name:  "outer single quotes",
			input: `'[1]'`,
			want:  `[1]`,
		},
		{
			name:  "stray backticks",
			input: "`{\"a\": 1}`",
			want:  `{"a": 1}`,
		},
		{
			name:  "escaped newlines collapsed",
			input: `{\n  "a": 1\n}`,
			want:  "{\n  \"a\": 1\n}",
		},
		{
			name:  "escaped crlf collapsed",
			input: `[1,\r\n2]`,
			want:  "[1,\n2]",
		},
		{
			name:  "concatenation artifacts removed",
			input: `{"a": "one" + "two"}`,
			want:  `{"a": "onetwo"}`,
		},
		{
			name:  "mismatched outer quotes kept",
			input: `"{}'`,
			want:  `"{}'`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
