package game

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Lion King", "lion king"},
		{"lion king", "lion king"},
		{"A Lion King!", "lion king"},
		{"  an   Apple  ", "apple"},
		{"UP!", "up"},
		{"Mission: Impossible", "mission: impossible"},
		{"Tom & Jerry", "tom & jerry"},
		{"It's a Wonderful Life", "it's a wonderful life"},
		{"E.T.", "et"},
		{"Spider-Man", "spiderman"},
		{"The The Matrix", "the matrix"},
		{"Thematic", "thematic"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMatchIsCaseAndArticleInsensitive(t *testing.T) {
	variants := []string{"The Lion King", "lion king", "A Lion King!", "LION   KING"}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if Normalize(v) != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, Normalize(v), want)
		}
	}
}
