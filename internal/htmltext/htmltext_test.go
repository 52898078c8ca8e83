package htmltext

import (
	"strings"
	"testing"
)

func TestExtract_PrefersMainOverBody(t *testing.T) {
	in := []byte(`<html><body>
		<nav>Home About Contact</nav>
		<main><p>The article body lives here.</p></main>
		<footer>Copyright notice.</footer>
	</body></html>`)
	got := Extract(in)
	if !strings.Contains(got, "The article body lives here.") {
		t.Fatalf("main content missing from %q", got)
	}
	if strings.Contains(got, "Home About") || strings.Contains(got, "Copyright") {
		t.Fatalf("boilerplate leaked into %q", got)
	}
}

func TestExtract_SkipsScriptAndStyle(t *testing.T) {
	in := []byte(`<html><body>
		<script>var x = 1;</script>
		<style>p { color: red; }</style>
		<p>Visible paragraph text.</p>
	</body></html>`)
	got := Extract(in)
	if strings.Contains(got, "var x") || strings.Contains(got, "color: red") {
		t.Fatalf("script/style leaked into %q", got)
	}
	if !strings.Contains(got, "Visible paragraph text.") {
		t.Fatalf("paragraph missing from %q", got)
	}
}

func TestExtract_ParagraphsSeparated(t *testing.T) {
	in := []byte(`<html><body><p>First paragraph here.</p><p>Second paragraph here.</p></body></html>`)
	got := Extract(in)
	if got != "First paragraph here.\nSecond paragraph here." {
		t.Fatalf("unexpected paragraph layout: %q", got)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if got := Extract(nil); got != "" {
		t.Fatalf("expected empty output for nil input, got %q", got)
	}
	if got := Extract([]byte("   ")); got != "" {
		t.Fatalf("expected empty output for blank input, got %q", got)
	}
}
