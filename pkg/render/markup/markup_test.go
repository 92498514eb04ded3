package markup_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-glossgen/pkg/render/markup"
)

func TestParseMode(t *testing.T) {
	cases := map[string]markup.Mode{
		"":         markup.ModeRaw,
		"raw":      markup.ModeRaw,
		" Escape ": markup.ModeEscape,
		"SANITIZE": markup.ModeSanitize,
	}
	for in, want := range cases {
		got, err := markup.ParseMode(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %q want %q", in, got, want)
		}
	}

	if _, err := markup.ParseMode("html"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRawPolicyLeavesTextUntouched(t *testing.T) {
	policy := mustPolicy(t, markup.ModeRaw)
	in := `a < b & "c"`
	if got := policy.Text(in); got != in {
		t.Fatalf("raw policy changed text: %q", got)
	}
}

func TestEscapePolicy(t *testing.T) {
	policy := mustPolicy(t, markup.ModeEscape)
	if got := policy.Text("a<b>&c"); got != "a&lt;b&gt;&amp;c" {
		t.Fatalf("unexpected escaped text %q", got)
	}
}

func TestSanitizePolicyRemovesScripts(t *testing.T) {
	policy := mustPolicy(t, markup.ModeSanitize)
	got := policy.Text(`<b>bold</b><script>alert('x')</script><a href="x">link</a>`)
	if strings.Contains(got, "script") {
		t.Fatalf("expected script tag to be removed, got %q", got)
	}
	if strings.Contains(got, "<a") {
		t.Fatalf("expected anchor to be removed, got %q", got)
	}
	if !strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("expected inline formatting to remain, got %q", got)
	}
}

func mustPolicy(t *testing.T, mode markup.Mode) markup.Policy {
	t.Helper()
	policy, err := markup.For(mode)
	if err != nil {
		t.Fatalf("policy %q: %v", mode, err)
	}
	if policy.Mode() != mode {
		t.Fatalf("policy mode mismatch: %q", policy.Mode())
	}
	return policy
}

func TestAttrKeepsPageNamesAddressable(t *testing.T) {
	cases := map[markup.Mode]string{
		markup.ModeRaw:      "<u>x&y.html",
		markup.ModeEscape:   "&lt;u&gt;x&amp;y.html",
		markup.ModeSanitize: "&lt;u&gt;x&amp;y.html",
	}
	for mode, want := range cases {
		if got := mustPolicy(t, mode).Attr("<u>x&y.html"); got != want {
			t.Fatalf("%s attr: got %q want %q", mode, got, want)
		}
	}
}

func TestPoliciesKeepInvalidUTF8Bytes(t *testing.T) {
	for _, mode := range []markup.Mode{markup.ModeRaw, markup.ModeEscape} {
		policy := mustPolicy(t, mode)
		if got := policy.Text("caf\xe9"); got != "caf\xe9" {
			t.Fatalf("%s text rewrote bytes: %q", mode, got)
		}
		if got := policy.Attr("caf\xe9.html"); got != "caf\xe9.html" {
			t.Fatalf("%s attr rewrote bytes: %q", mode, got)
		}
	}
}
