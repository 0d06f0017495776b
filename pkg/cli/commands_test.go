package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const sampleFormYAML = `
version: "1"
id: sample
title: Sample
fields:
  - id: name
    label: Name
  - id: token
    label: Token
    type: secret
`

// setupConfigDir points the CLI at a temp config dir with one form.
func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FORMFLOW_CONFIG_DIR", dir)

	formsDir := filepath.Join(dir, "forms")
	if err := os.MkdirAll(formsDir, 0755); err != nil {
		t.Fatalf("failed to create forms dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(formsDir, "sample.yaml"), []byte(sampleFormYAML), 0644); err != nil {
		t.Fatalf("failed to write form: %v", err)
	}
	return dir
}

func TestResolveFormPath(t *testing.T) {
	dir := setupConfigDir(t)

	path, err := resolveFormPath("sample")
	if err != nil {
		t.Fatalf("resolveFormPath(name) failed: %v", err)
	}
	if path != filepath.Join(dir, "forms", "sample.yaml") {
		t.Errorf("resolved path = %q", path)
	}

	direct := filepath.Join(dir, "forms", "sample.yaml")
	path, err = resolveFormPath(direct)
	if err != nil {
		t.Fatalf("resolveFormPath(path) failed: %v", err)
	}
	if path != direct {
		t.Errorf("resolved path = %q, want %q", path, direct)
	}

	if _, err := resolveFormPath("no-such-form"); err == nil {
		t.Error("resolveFormPath(missing) should fail")
	}
}

func TestValidateCommand(t *testing.T) {
	setupConfigDir(t)

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"validate", "sample"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate failed: %v\noutput: %s", err, out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("is valid")) {
		t.Errorf("output = %q, want validity confirmation", out.String())
	}
}

func TestValidateCommand_BadForm(t *testing.T) {
	dir := setupConfigDir(t)
	bad := filepath.Join(dir, "forms", "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: \"1\"\nid: bad\nfields: []\n"), 0644); err != nil {
		t.Fatalf("failed to write form: %v", err)
	}

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"validate", "bad"})

	if err := cmd.Execute(); err == nil {
		t.Error("validate should fail for a form with no fields")
	}
}

func TestDraftsCommand_EmptyDatabase(t *testing.T) {
	setupConfigDir(t)

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"drafts", "sample"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("drafts failed: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("No drafts")) {
		t.Errorf("output = %q, want empty-list message", out.String())
	}
}

func TestDraftCommand_MissingDraft(t *testing.T) {
	setupConfigDir(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"draft", "nonexistent"})

	if err := cmd.Execute(); err == nil {
		t.Error("draft should fail for an unknown id")
	}
}
