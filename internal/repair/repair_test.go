package repair

import "testing"

func TestExtract_TopLevelObject(t *testing.T) {
	got := Extract(`{"slide_content": "# Title\nBody"}`)
	if got != "# Title\nBody" {
		t.Errorf("expected markdown payload, got %q", got)
	}
}

func TestExtract_AlternateKeys(t *testing.T) {
	cases := map[string]string{
		"content":  `{"content": "# A"}`,
		"text":     `{"text": "# A"}`,
		"response": `{"response": "# A"}`,
	}
	for key, raw := range cases {
		if got := Extract(raw); got != "# A" {
			t.Errorf("key %s: expected %q, got %q", key, "# A", got)
		}
	}
}

func TestExtract_KeyPriority(t *testing.T) {
	// slide_content wins over the other key names.
	got := Extract(`{"text": "wrong", "slide_content": "right"}`)
	if got != "right" {
		t.Errorf("expected slide_content to win, got %q", got)
	}
}

func TestExtract_ArrayElement(t *testing.T) {
	got := Extract(`[{"slide_content": "# Title\nBody"}]`)
	if got != "# Title\nBody" {
		t.Errorf("expected markdown from first array element, got %q", got)
	}
}

func TestExtract_NestedObject(t *testing.T) {
	got := Extract(`{"data": {"slide_content": "# Nested"}}`)
	if got != "# Nested" {
		t.Errorf("expected nested payload, got %q", got)
	}
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	got := Extract("# Title\nBody")
	if got != "# Title\nBody" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestExtract_FencedJSON(t *testing.T) {
	raw := "```json\n{\"slide_content\": \"# Fenced\"}\n```"
	if got := Extract(raw); got != "# Fenced" {
		t.Errorf("expected fenced JSON to be unwrapped, got %q", got)
	}
}

func TestExtract_FencedMarkdown(t *testing.T) {
	raw := "```markdown\n# Title\n\nBody\n```"
	if got := Extract(raw); got != "# Title\n\nBody" {
		t.Errorf("expected fenced markdown unwrapped, got %q", got)
	}
}

func TestExtract_EmptyValueFallsThrough(t *testing.T) {
	// An empty slide_content should not be picked over the raw text.
	raw := `{"slide_content": ""}`
	if got := Extract(raw); got != raw {
		t.Errorf("expected raw passthrough for empty payload, got %q", got)
	}
}

func TestEnsureTitle_AddsHeading(t *testing.T) {
	got := EnsureTitle("Body text only.", "Fundamentals")
	if got != "# Fundamentals\n\nBody text only." {
		t.Errorf("expected injected heading, got %q", got)
	}
}

func TestEnsureTitle_KeepsExistingHeading(t *testing.T) {
	md := "# Already titled\n\nBody"
	if got := EnsureTitle(md, "Other"); got != md {
		t.Errorf("expected content unchanged, got %q", got)
	}
}

func TestEnsureTitle_SkipsUnparsedJSON(t *testing.T) {
	broken := `{"slide_content": truncated`
	if got := EnsureTitle(broken, "Title"); got != broken {
		t.Errorf("expected broken JSON untouched, got %q", got)
	}
}

func TestStripCodeFence_NoFence(t *testing.T) {
	if got := StripCodeFence("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFence_FenceWithoutTag(t *testing.T) {
	if got := StripCodeFence("```\nhello\n```"); got != "hello" {
		t.Errorf("got %q", got)
	}
}
