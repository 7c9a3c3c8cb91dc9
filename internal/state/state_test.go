package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vavargasdev/vanotes/internal/constants"
)

func TestNewStateBootstrapsDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	s, err := NewState(dir)
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	defer s.Close()

	for _, name := range []string{
		constants.DBFile,
		constants.ConfigFile,
		constants.CategoriesFile,
		constants.LogFile,
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}

	if s.Config.MaxItems != constants.DefaultMaxItems {
		t.Fatalf("MaxItems = %d, want %d", s.Config.MaxItems, constants.DefaultMaxItems)
	}

	// The seed rows register their categories on first derive.
	if s.Registry.Len() < 2 {
		t.Fatalf("registry has %d entries, want at least the seeded ones", s.Registry.Len())
	}
}

func TestStateCloseIsIdempotent(t *testing.T) {
	s, err := NewState(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}
