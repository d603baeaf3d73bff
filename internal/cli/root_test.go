package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRootCmd_HasVariantSubcommands(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	want := map[string]bool{"boxes": false, "grid": false, "tiles": false, "bomb": false, "variants": false, "docs": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestVariantsCmd_EmitsJSON(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"variants"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var payload struct {
		Variants []struct {
			Slug  string `json:"slug"`
			Count int    `json:"count"`
			Game  bool   `json:"game"`
		} `json:"variants"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v\noutput: %s", err, out.String())
	}
	if len(payload.Variants) != 4 {
		t.Fatalf("%d variants; want 4", len(payload.Variants))
	}
	games := 0
	for _, v := range payload.Variants {
		if v.Game {
			games++
			if v.Slug != "bomb" || v.Count != 9 {
				t.Fatalf("game variant = %+v; want bomb with 9 cards", v)
			}
		}
	}
	if games != 1 {
		t.Fatalf("%d game variants; want 1", games)
	}
}

func TestDocsCmd_ListsAndFetchesTopics(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"docs"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list topics: %v", err)
	}
	for _, topic := range []string{"overview", "gestures", "bomb"} {
		if !strings.Contains(out.String(), topic) {
			t.Fatalf("topic list missing %q:\n%s", topic, out.String())
		}
	}

	cmd = NewRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"docs", "bomb", "--raw"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("docs bomb: %v", err)
	}
	if !strings.Contains(out.String(), "Find the Bomb") {
		t.Fatalf("bomb topic body unexpected:\n%s", out.String())
	}
}

func TestDocsCmd_UnknownTopic(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"docs", "nope"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "shufflegrid ") {
		t.Fatalf("version output = %q", out.String())
	}
}
