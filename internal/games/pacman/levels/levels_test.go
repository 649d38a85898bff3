package levels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRows(t *testing.T) {
	cells, err := ParseRows([]string{
		"#.o",
		"GP ",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	want := [][]Cell{
		{CellWall, CellDot, CellPellet},
		{CellGhostSpawn, CellPlayerSpawn, CellEmpty},
	}
	for y := range want {
		for x := range want[y] {
			if cells[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d): got %v, want %v", x, y, cells[y][x], want[y][x])
			}
		}
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged rows", []string{"###", "##"}},
		{"unknown rune", []string{"#X#"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRows(tt.rows); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`id: tiny
name: Tiny
rows:
  - "#####"
  - "#P.G#"
  - "#####"
`)
	level, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if level.ID != "tiny" || level.Name != "Tiny" {
		t.Errorf("metadata: got %q/%q", level.ID, level.Name)
	}
	if level.Width() != 5 || level.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 5x3", level.Width(), level.Height())
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML([]byte("not: [valid")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := ParseYAML([]byte("id: x\nrows: []\n")); err == nil {
		t.Error("expected error for empty rows")
	}
}

func TestDefaultLevel(t *testing.T) {
	level := Default()
	if level.Width() != 25 || level.Height() != 25 {
		t.Errorf("classic maze is %dx%d, want 25x25", level.Width(), level.Height())
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	data := []byte(`id: custom
name: Custom
rows:
  - "####"
  - "#PG#"
  - "#..#"
  - "####"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	level, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if level.ID != "custom" {
		t.Errorf("ID: got %q, want custom", level.ID)
	}
	if level.FilePath != path {
		t.Errorf("FilePath: got %q, want %q", level.FilePath, path)
	}

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("LoadAll: got %d levels, want 1", len(all))
	}
}
