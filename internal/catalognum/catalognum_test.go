package catalognum

import "testing"

func TestFindInAlbum(t *testing.T) {
	tests := []struct {
		album    string
		wantCode string
		wantFull string
	}{
		{"ABC123 My Song", "ABC123", "ABC123 "},
		{"My Album [ZEN205]", "ZEN205", " [ZEN205]"},
		{"My Album (FW008)", "FW008", " (FW008)"},
		{"Dark Matter - DM12", "DM12", " - DM12"},
		{"CAT 031: Singles", "CAT 031", "CAT 031: "},
		{"Plain Album Title", "", ""},
		{"Summer EP", "", ""},
		{"Best Of Vol 2", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.album, func(t *testing.T) {
			m := FindInAlbum(tt.album)
			if tt.wantCode == "" {
				if m != nil {
					t.Fatalf("FindInAlbum(%q) = %+v, want nil", tt.album, m)
				}
				return
			}
			if m == nil {
				t.Fatalf("FindInAlbum(%q) = nil, want code %q", tt.album, tt.wantCode)
			}
			if m.Code != tt.wantCode {
				t.Errorf("FindInAlbum(%q).Code = %q, want %q", tt.album, m.Code, tt.wantCode)
			}
			if m.Full != tt.wantFull {
				t.Errorf("FindInAlbum(%q).Full = %q, want %q", tt.album, m.Full, tt.wantFull)
			}
		})
	}
}

func TestFindAnywhere(t *testing.T) {
	tests := []struct {
		token    string
		wantCode string
	}{
		{"ABC123", "ABC123"},
		{"[ABC123]", "ABC123"},
		{"|FW008|", "FW008"},
		{"ZEN12", "ZEN12"},
		{"word", ""},
		{"EP2", ""},
		{"LP12", ""},
		{"VA01", ""},
		{"B2", ""},
		{"2021", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m := FindAnywhere(tt.token)
			if tt.wantCode == "" {
				if m != nil {
					t.Errorf("FindAnywhere(%q) = %+v, want nil", tt.token, m)
				}
				return
			}
			if m == nil {
				t.Fatalf("FindAnywhere(%q) = nil, want %q", tt.token, tt.wantCode)
			}
			if m.Code != tt.wantCode {
				t.Errorf("FindAnywhere(%q).Code = %q, want %q", tt.token, m.Code, tt.wantCode)
			}
		})
	}
}

func TestFindDelimited(t *testing.T) {
	tests := []struct {
		name     string
		wantCode string
		wantFull string
	}{
		{"Intro [ZEN205]", "ZEN205", "[ZEN205]"},
		{"Outro (ABC123)", "ABC123", "(ABC123)"},
		{"No brackets ABC123", "", ""},
		{"Empty []", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FindDelimited(tt.name)
			if tt.wantCode == "" {
				if m != nil {
					t.Errorf("FindDelimited(%q) = %+v, want nil", tt.name, m)
				}
				return
			}
			if m == nil {
				t.Fatalf("FindDelimited(%q) = nil, want %q", tt.name, tt.wantCode)
			}
			if m.Code != tt.wantCode {
				t.Errorf("FindDelimited(%q).Code = %q, want %q", tt.name, m.Code, tt.wantCode)
			}
			if m.Full != tt.wantFull {
				t.Errorf("FindDelimited(%q).Full = %q, want %q", tt.name, m.Full, tt.wantFull)
			}
		})
	}
}
