package loader

import "testing"

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"plain", "1,Bolt,23", ',', []string{"1", "Bolt", "23"}},
		{"whitespace", "  1 , Bolt ,23  ", ',', []string{"1", "Bolt", "23"}},
		{"quoted delimiter", `1,"Bolt, hex",23`, ',', []string{"1", "Bolt, hex", "23"}},
		{"quoted whitespace", `" Bolt "`, ',', []string{"Bolt"}},
		{"spaced quotes", `1,  "a,b"  `, ',', []string{"1", "a,b"}},
		{"padded quoted field", `  "a"`, ',', []string{"a"}},
		{"empty fields", ",,", ',', []string{"", "", ""}},
		{"empty line", "", ',', []string{""}},
		{"semicolon", "1;Bolt,M8", ';', []string{"1", "Bolt,M8"}},
		{"tab", "1\tBolt", '\t', []string{"1", "Bolt"}},
		{"unterminated quote", `1,"Bolt,23`, ',', []string{"1", "Bolt,23"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLine(tt.line, tt.delim)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
