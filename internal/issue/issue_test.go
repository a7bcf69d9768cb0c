// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestCatalog_Complete(t *testing.T) {
	t.Parallel()

	ids := []Id{
		InvalidInputId,
		UnknownCommandId,
		ArgumentMismatchId,
		RoutineFailedId,
		ScriptFailedId,
		InvalidGrammarId,
		DictionaryFileNotFoundId,
		DictionaryFileInvalidId,
		ConfigLoadFailedId,
	}

	if InvalidInputId != 1 {
		t.Errorf("InvalidInputId = %d, want 1", InvalidInputId)
	}
	for _, id := range ids {
		is := Get(id)
		if is == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if is.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, is.Id())
		}
		if is.Title() == "" || strings.TrimSpace(string(is.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no title or body", id)
		}
	}
	if got := len(Values()); got != len(ids) {
		t.Errorf("Values() has %d entries, want %d", got, len(ids))
	}
}

func TestValues_SortedById(t *testing.T) {
	t.Parallel()

	values := Values()
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Fatalf("Values() not sorted at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(0) != nil || Get(999) != nil {
		t.Error("unknown ids should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(UnknownCommandId).Render("notty")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("rendered output should contain the title:\n%s", out)
	}
	if !strings.Contains(out, "wca .help") {
		t.Errorf("rendered output should contain the example:\n%s", out)
	}
}
