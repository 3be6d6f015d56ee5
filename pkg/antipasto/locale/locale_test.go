package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveUnknownIDPassesThrough(t *testing.T) {
	if got := Resolve("Not A Message ID"); got != "Not A Message ID" {
		t.Fatalf("got %q, want the ID back", got)
	}
}

func TestLoadMessageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "active.de.toml")
	content := "menu_copy = \"Kopieren\"\nmenu_paste = \"Einfügen\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Load("de", path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(func() { Load("en") })

	if got := Resolve("menu_copy"); got != "Kopieren" {
		t.Fatalf("menu_copy = %q, want Kopieren", got)
	}
	if IsRTL() {
		t.Fatal("German is not right-to-left")
	}
}

func TestLoadBadTag(t *testing.T) {
	if err := Load("not a tag"); err == nil {
		t.Fatal("expected an error for an unparseable tag")
	}
}

func TestRTLDetection(t *testing.T) {
	cases := []struct {
		lang string
		rtl  bool
	}{
		{"ar", true},
		{"he", true},
		{"fa", true},
		{"en", false},
		{"ja", false},
	}
	t.Cleanup(func() { Load("en") })

	for _, tc := range cases {
		if err := Load(tc.lang); err != nil {
			t.Fatalf("Load(%q): %v", tc.lang, err)
		}
		if IsRTL() != tc.rtl {
			t.Fatalf("IsRTL after Load(%q) = %v, want %v", tc.lang, IsRTL(), tc.rtl)
		}
	}
}
