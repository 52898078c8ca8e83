package textstat

import "testing"

func TestWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"several words in a row", 5},
		{"tabs\tand\nnewlines count", 4},
	}
	for _, c := range cases {
		if got := Words(c.in); got != c.want {
			t.Fatalf("Words(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReadingMinutes_Floor(t *testing.T) {
	if got := ReadingMinutes(0); got != 1 {
		t.Fatalf("ReadingMinutes(0) = %d, want floor of 1", got)
	}
	if got := ReadingMinutes(199); got != 1 {
		t.Fatalf("ReadingMinutes(199) = %d, want 1", got)
	}
	if got := ReadingMinutes(1000); got != 5 {
		t.Fatalf("ReadingMinutes(1000) = %d, want 5", got)
	}
}

func TestCompressionPercent(t *testing.T) {
	if got := CompressionPercent(0, 10); got != 0 {
		t.Fatalf("zero original should report 0, got %f", got)
	}
	if got := CompressionPercent(200, 50); got != 75 {
		t.Fatalf("CompressionPercent(200, 50) = %f, want 75", got)
	}
}

func TestChars(t *testing.T) {
	if got := Chars("abc"); got != 3 {
		t.Fatalf("Chars = %d, want 3", got)
	}
	if got := Chars("héllo"); got != 5 {
		t.Fatalf("multibyte Chars = %d, want 5", got)
	}
}
