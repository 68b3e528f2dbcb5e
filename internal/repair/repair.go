// Package repair recovers usable markdown from imperfect model output.
//
// The model is asked to return `{"slide_content": "<markdown>"}`, but in
// practice it wraps the JSON in code fences, nests the payload one level
// deep, returns an array, renames the key, or skips JSON entirely. Extract
// walks an ordered chain of pure attempts and falls back to treating the
// raw text as markdown, because serving imperfect content beats serving
// nothing mid-session.
package repair

import (
	"encoding/json"
	"strings"
)

// contentKeys are the payload key names tried at each level, in order.
var contentKeys = []string{"slide_content", "content", "text", "response"}

// Extract returns the markdown payload carried by raw model output.
// It never fails: when no JSON shape matches, the fence-stripped raw text
// is returned as-is.
func Extract(raw string) string {
	text := StripCodeFence(raw)

	attempts := []func(string) (string, bool){
		fromTopLevelObject,
		fromArrayElement,
		fromNestedObject,
	}
	for _, attempt := range attempts {
		if md, ok := attempt(text); ok {
			return md
		}
	}

	return text
}

// EnsureTitle prepends a markdown H1 when the content has no heading.
// Content that still looks like unparsed JSON is left untouched so a broken
// payload is never dressed up as a titled slide.
func EnsureTitle(content, title string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "#") {
		return content
	}
	if LooksLikeJSON(trimmed) {
		return content
	}
	if title == "" {
		return content
	}
	return "# " + title + "\n\n" + content
}

// LooksLikeJSON reports whether text appears to be an unparsed JSON value.
func LooksLikeJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	first := trimmed[0]
	return first == '{' || first == '['
}

// StripCodeFence removes a surrounding triple-backtick block, including an
// optional language tag on the opening fence. Text without a fence is
// returned unchanged apart from whitespace trimming.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := strings.TrimPrefix(trimmed, "```")
	// Drop the language tag (e.g. "json", "markdown") on the fence line.
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			body = body[idx+1:]
		}
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

func isFenceTag(line string) bool {
	if len(line) > 16 {
		return false
	}
	for _, r := range line {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// fromTopLevelObject handles {"slide_content": "..."} and friends.
func fromTopLevelObject(text string) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return "", false
	}
	return pickKey(obj)
}

// fromArrayElement handles [{"slide_content": "..."}].
func fromArrayElement(text string) (string, bool) {
	var arr []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &arr); err != nil {
		return "", false
	}
	if len(arr) == 0 {
		return "", false
	}
	return pickKey(arr[0])
}

// fromNestedObject handles {"data": {"slide_content": "..."}}, the payload
// one level below an arbitrary intermediate key.
func fromNestedObject(text string) (string, bool) {
	var obj map[string]map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return "", false
	}
	for _, inner := range obj {
		if md, ok := pickKey(inner); ok {
			return md, true
		}
	}
	return "", false
}

// pickKey returns the first known content key holding a non-empty string.
func pickKey(obj map[string]json.RawMessage) (string, bool) {
	for _, key := range contentKeys {
		rawVal, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(rawVal, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
