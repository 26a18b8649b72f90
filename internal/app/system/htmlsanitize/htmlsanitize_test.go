package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
)

func TestPlain_Empty(t *testing.T) {
	result := htmlsanitize.Plain("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestPlain_PlainText(t *testing.T) {
	result := htmlsanitize.Plain("I build web apps in Go.")
	if result != "I build web apps in Go." {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestPlain_RemovesTags(t *testing.T) {
	result := htmlsanitize.Plain("<p><strong>Bold</strong> bio</p>")
	if result != "Bold bio" {
		t.Errorf("expected tags stripped, got %q", result)
	}
}

func TestPlain_RemovesScript(t *testing.T) {
	result := htmlsanitize.Plain("Hello<script>alert('xss')</script>")
	if result != "Hello" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestPlain_TrimsResult(t *testing.T) {
	result := htmlsanitize.Plain("  padded  ")
	if result != "padded" {
		t.Errorf("expected trimmed text, got %q", result)
	}
}

func TestPlainSlice(t *testing.T) {
	got := htmlsanitize.PlainSlice([]string{"<b>Go</b>", " React "})
	want := []string{"Go", "React"}
	if len(got) != len(want) {
		t.Fatalf("PlainSlice() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("PlainSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
