package value

import "testing"

func TestTrimXMLWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{" \t\r\nabc\n ", "abc"},
		{"a b", "a b"},
		{" x", " x"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := string(TrimXMLWhitespace([]byte(tt.in))); got != tt.want {
			t.Errorf("TrimXMLWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := TrimXMLWhitespaceString(tt.in); got != tt.want {
			t.Errorf("TrimXMLWhitespaceString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \n\t") {
		t.Fatal("whitespace should be blank")
	}
	if IsBlank(" x ") {
		t.Fatal("text should not be blank")
	}
}

func TestRemoveXMLWhitespace(t *testing.T) {
	if got := RemoveXMLWhitespace("AQID\nBA==\n"); got != "AQIDBA==" {
		t.Fatalf("RemoveXMLWhitespace = %q", got)
	}
	if got := RemoveXMLWhitespace("abc"); got != "abc" {
		t.Fatalf("RemoveXMLWhitespace = %q", got)
	}
}
