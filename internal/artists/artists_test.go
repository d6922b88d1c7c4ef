package artists

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		credit string
		force  bool
		want   []string
	}{
		{"Single Artist", false, []string{"Single Artist"}},
		{"A, B", false, []string{"A", "B"}},
		{"A, B & C", false, []string{"A", "B", "C"}},
		{"A; B", false, []string{"A", "B"}},
		{"A / B", false, []string{"A", "B"}},
		{"AC/DC", false, []string{"AC/DC"}},
		{"Alpha and Beta", false, []string{"Alpha", "Beta"}},
		{"Alpha x Beta", false, []string{"Alpha x Beta"}},
		{"Alpha x Beta", true, []string{"Alpha", "Beta"}},
		{"Alpha X Beta", true, []string{"Alpha", "Beta"}},
		{"Alpha + Beta", true, []string{"Alpha", "Beta"}},
		{"Charli XCX", true, []string{"Charli XCX"}},
		{"A, A, B", false, []string{"A", "B"}},
		{"", false, nil},
		{"  ", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.credit, func(t *testing.T) {
			got := Split(tt.credit, tt.force)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %v) = %v, want %v", tt.credit, tt.force, got, tt.want)
			}
		})
	}
}

func TestSplitAll(t *testing.T) {
	got := SplitAll([]string{"A, B", "B x C", "A"}, true)
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAll = %v, want %v", got, want)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"  Too   many   spaces  ", "Too many spaces"},
		{`"Quoted Title"`, "Quoted Title"},
		{"Serenity (Free Download)", "Serenity"},
		{"Serenity FREE DL", "Serenity"},
		{"Keep (Parens) Intact", "Keep (Parens) Intact"},
		{"Plain", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanName(tt.name); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestFtPat(t *testing.T) {
	ftIdx := FtPat.SubexpIndex("ft")
	artistIdx := FtPat.SubexpIndex("ft_artist")

	tests := []struct {
		value      string
		wantFt     string
		wantArtist string
	}{
		{"Song (feat. Singer)", "(feat. Singer)", "Singer"},
		{"Song feat. Singer", "feat. Singer", "Singer"},
		{"Song ft. MC Example", "ft. MC Example", "MC Example"},
		{"Song w/ Friend", "w/ Friend", "Friend"},
		{"Song [featuring Two, Three]", "[featuring Two, Three]", "Two, Three"},
		{"Daft Punk", "", ""},
		{"No annotation here", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			m := FtPat.FindStringSubmatch(tt.value)
			if tt.wantFt == "" {
				if m != nil {
					t.Errorf("FtPat matched %q: %q", tt.value, m[0])
				}
				return
			}
			if m == nil {
				t.Fatalf("FtPat did not match %q", tt.value)
			}
			if m[ftIdx] != tt.wantFt {
				t.Errorf("ft = %q, want %q", m[ftIdx], tt.wantFt)
			}
			if m[artistIdx] != tt.wantArtist {
				t.Errorf("ft_artist = %q, want %q", m[artistIdx], tt.wantArtist)
			}
		})
	}
}
