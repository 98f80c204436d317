package testing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/barskin/pkg/rendering"
)

// UpdateEnv names the environment variable that switches MatchesFile from
// comparing to rewriting golden files.
const UpdateEnv = "BARSKIN_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the recorded output of one paint.
type Snapshot struct {
	Size       [2]float64  `json:"size"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// CaptureSnapshot records everything paint draws on a canvas of the given
// size.
func CaptureSnapshot(size rendering.Size, paint func(canvas rendering.Canvas)) *Snapshot {
	return &Snapshot{
		Size:       [2]float64{round2(size.Width), round2(size.Height)},
		DisplayOps: Record(size, paint),
	}
}

// MatchesFile fails t when the snapshot differs from the golden file at
// path. With UpdateEnv set to 1 the golden file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("updating snapshot %s: %v", path, err)
		}
		return
	}

	golden, err := loadSnapshot(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		t.Fatalf("snapshot %s does not exist\n\nCreate it with: %s=1 go test -run %s", path, UpdateEnv, t.Name())
		return
	case err != nil:
		t.Fatalf("loading snapshot %s: %v", path, err)
		return
	}

	if diff := s.Diff(golden); diff != "" {
		t.Errorf("snapshot %s does not match:\n%s\nUpdate it with: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes the snapshot to path, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := s.marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff from golden to s, or "" when they are equal.
func (s *Snapshot) Diff(golden *Snapshot) string {
	actual, _ := s.marshal()
	expected, _ := golden.marshal()
	if bytes.Equal(actual, expected) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("snapshots differ (diff failed: %v)", err)
	}
	return diff
}

func (s *Snapshot) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &snap, nil
}
