package placeholder_test

import (
	"strings"
	"testing"

	"github.com/almamala/pagetran/internal/placeholder"
)

func TestProtect_PlainText(t *testing.T) {
	text := "Hello, world!"
	got, markers := placeholder.Protect(text)
	if got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
	if len(markers) != 0 {
		t.Errorf("expected 0 markers, got %d", len(markers))
	}
}

func TestProtect_HTMLUntouched(t *testing.T) {
	// Plain HTML is the backend's job; Protect must leave it alone.
	text := "<p>Hello <b>world</b></p>"
	got, markers := placeholder.Protect(text)
	if got != text {
		t.Errorf("expected HTML to pass through, got %q", got)
	}
	if len(markers) != 0 {
		t.Errorf("expected 0 markers, got %d", len(markers))
	}
}

func TestProtect_Shortcode(t *testing.T) {
	text := `Before {{< ref "other-post.md" >}} after`
	got, markers := placeholder.Protect(text)

	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d: %v", len(markers), markers)
	}
	if strings.Contains(got, "{{<") {
		t.Errorf("shortcode still present in %q", got)
	}
	if !strings.Contains(got, `<ph id="0"/>`) {
		t.Errorf("expected marker in %q", got)
	}
}

func TestProtect_PercentShortcode(t *testing.T) {
	text := "{{% notice warning %}}careful{{% /notice %}}"
	got, markers := placeholder.Protect(text)

	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d: %v", len(markers), markers)
	}
	if !strings.Contains(got, "careful") {
		t.Errorf("inner text should stay translatable, got %q", got)
	}
}

func TestProtect_TemplateExpression(t *testing.T) {
	text := "Published on {{ .Date }} by {{ .Author }}."
	_, markers := placeholder.Protect(text)

	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d: %v", len(markers), markers)
	}
}

func TestProtect_MultilineShortcode(t *testing.T) {
	text := "x {{< figure\n  src=\"a.png\"\n>}} y"
	got, markers := placeholder.Protect(text)

	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if strings.Contains(got, "figure") {
		t.Errorf("shortcode body still present in %q", got)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	original := `See {{< ref "a.md" >}} and {{ .Site.Title }} plus {{% note %}}hi{{% /note %}}.`
	protected, markers := placeholder.Protect(original)

	restored := placeholder.Restore(protected, markers)
	if restored != original {
		t.Errorf("round-trip failed:\n  original: %q\n  restored: %q", original, restored)
	}
}

func TestRestore_OutOfRangeIndexIgnored(t *testing.T) {
	text := `<ph id="99"/> some text`
	restored := placeholder.Restore(text, []string{"{{< ref >}}"})
	if !strings.Contains(restored, `<ph id="99"/>`) {
		t.Errorf("expected out-of-range marker to remain, got %q", restored)
	}
}

func TestRestore_SpacedSelfClose(t *testing.T) {
	// Backends sometimes reformat empty elements with a space before the slash.
	restored := placeholder.Restore(`a <ph id="0" /> b`, []string{"{{ .X }}"})
	if restored != "a {{ .X }} b" {
		t.Errorf("expected marker with spaced self-close to restore, got %q", restored)
	}
}

func TestValidate_AllPresent(t *testing.T) {
	text := `<ph id="0"/> some <ph id="1"/> text`
	markers := []string{"{{ .A }}", "{{ .B }}"}
	missing := placeholder.Validate(text, markers)
	if len(missing) != 0 {
		t.Errorf("expected no missing, got %v", missing)
	}
}

func TestValidate_SomeMissing(t *testing.T) {
	text := `<ph id="0"/> some text`
	markers := []string{"{{ .A }}", "{{ .B }}", "{{ .C }}"}
	missing := placeholder.Validate(text, markers)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing (indices 1,2), got %v", missing)
	}
	if missing[0] != 1 || missing[1] != 2 {
		t.Errorf("expected missing [1 2], got %v", missing)
	}
}
