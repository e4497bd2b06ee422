package format

import "testing"

func TestFormatAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma form", "Smith, John Paul", "Smith JP"},
		{"western order", "John Paul Smith", "Smith JP"},
		{"single token", "Plato", "Plato"},
		{"hyphenated given name", "Liu, Mei-Ling", "Liu ML"},
		{"tex accent in name", `G\'omez, Juan`, "Gomez J"},
		{"empty", "", ""},
		{"comma with no surname", ", John", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthor(tt.in); got != tt.want {
				t.Errorf("FormatAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		max   int
		want  string
	}{
		{
			name:  "two authors joined",
			field: "Smith, John Paul and Doe, Jane",
			max:   3,
			want:  "Smith JP, Doe J",
		},
		{
			name:  "four authors truncated with et al",
			field: "Wang, Xi and Xu, Yan and Liu, Si and Zhao, Wu",
			max:   3,
			want:  "Wang X, Xu Y, Liu S, et al.",
		},
		{
			name:  "newlines treated as spaces",
			field: "Smith,\nJohn and Doe, Jane",
			max:   3,
			want:  "Smith J, Doe J",
		},
		{
			name:  "empty field",
			field: "",
			max:   3,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthors(tt.field, tt.max); got != tt.want {
				t.Errorf("FormatAuthors(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	got := SplitAuthors("A One and  and B Two")
	if len(got) != 2 || got[0] != "A One" || got[1] != "B Two" {
		t.Errorf("SplitAuthors() = %v, want [A One, B Two]", got)
	}
}
