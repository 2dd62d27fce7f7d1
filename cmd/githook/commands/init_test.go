package commands

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/devnanny/githook/internal/engine/config"
	"github.com/devnanny/githook/internal/engine/hook"
)

func TestInitProject_HappyPath(t *testing.T) {
	fsys := &mockInitFS{
		statNotExist: true,
		statErr:      fs.ErrNotExist,
	}
	inst := &fakeInstaller{}
	out := &bytes.Buffer{}

	err := initProject(context.Background(), "/project/.githook.yaml", fsys, inst, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fsys.writtenPath != "/project/.githook.yaml" {
		t.Errorf("expected config written to /project/.githook.yaml, got %q", fsys.writtenPath)
	}
	if string(fsys.writtenData) != config.DefaultYAML {
		t.Error("expected default config content")
	}
	if len(inst.installed) != 1 || inst.installed[0] != hook.PreCommit {
		t.Errorf("expected pre-commit to be installed, got %v", inst.installed)
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("expected 'Created' in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "initialized successfully") {
		t.Errorf("expected success message, got %q", out.String())
	}
}

func TestInitProject_ConfigAlreadyExists(t *testing.T) {
	fsys := &mockInitFS{statNotExist: false}
	inst := &fakeInstaller{}
	out := &bytes.Buffer{}

	err := initProject(context.Background(), "/project/.githook.yaml", fsys, inst, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fsys.writtenData != nil {
		t.Error("expected existing config to be left alone")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("expected 'already exists' in output, got %q", out.String())
	}
	if len(inst.installed) != 1 {
		t.Error("expected hook install even when config exists")
	}
}

func TestInitProject_WriteError(t *testing.T) {
	fsys := &mockInitFS{
		statNotExist: true,
		statErr:      fs.ErrNotExist,
		writeErr:     errors.New("disk full"),
	}
	inst := &fakeInstaller{}
	out := &bytes.Buffer{}

	err := initProject(context.Background(), "/project/.githook.yaml", fsys, inst, out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "writing .githook.yaml") {
		t.Errorf("unexpected error: %q", err.Error())
	}
	if len(inst.installed) != 0 {
		t.Error("expected no hook install after config write failure")
	}
}

func TestInitProject_HookExists(t *testing.T) {
	fsys := &mockInitFS{statNotExist: false}
	inst := &fakeInstaller{installErr: &hook.HookExistsError{Name: hook.PreCommit}}
	out := &bytes.Buffer{}

	err := initProject(context.Background(), "/project/.githook.yaml", fsys, inst, out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, hook.ErrHookExists) {
		t.Errorf("expected ErrHookExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "installing hook") {
		t.Errorf("unexpected error: %q", err.Error())
	}
}
