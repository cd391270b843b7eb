package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestJSON_PrettyPrintsWithTwoSpaceIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1\n") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
