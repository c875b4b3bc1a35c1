package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "b"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("split len=%d, want %d", len(got), 3)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if Split("") != nil {
		t.Fatalf("split of empty text must be nil")
	}
}

func TestStringWidth_WideRunes(t *testing.T) {
	if got, want := StringWidth("ab"), 2; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
	if got, want := StringWidth("日本"), 4; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		width int
		tail  string
		want  string
	}{
		{text: "reactjs.png", width: 20, tail: "…", want: "reactjs.png"},
		{text: "reactjs.png", width: 8, tail: "…", want: "reactjs…"},
		{text: "日本語.png", width: 5, tail: "…", want: "日本…"},
		{text: "ééé", width: 2, tail: "", want: "éé"},
		{text: "abc", width: 0, tail: "…", want: ""},
		{text: "abcdef", width: 2, tail: "...", want: "ab"},
	}

	for _, tc := range cases {
		if got := Truncate(tc.text, tc.width, tc.tail); got != tc.want {
			t.Fatalf("Truncate(%q, %d, %q)=%q, want %q", tc.text, tc.width, tc.tail, got, tc.want)
		}
	}
}
