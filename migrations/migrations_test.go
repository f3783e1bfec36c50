package migrations

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestReadMigrationFilesOrdersByVersion(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"010_add_index.sql":     {Data: []byte("CREATE INDEX x ON t (a);")},
		"002_create_things.sql": {Data: []byte("CREATE TABLE things ();")},
		"001_init.sql":          {Data: []byte("CREATE TABLE t (a int);")},
		"README.md":             {Data: []byte("not sql")},
		"notes.sql":             {Data: []byte("-- no version")},
		"sub/003_nested.sql":    {Data: []byte("ignored")},
	}

	got, err := readMigrationFiles(fsys)
	if err != nil {
		t.Fatalf("readMigrationFiles returned error: %v", err)
	}

	want := []Migration{
		{Version: 1, Name: "init", SQL: "CREATE TABLE t (a int);"},
		{Version: 2, Name: "create_things", SQL: "CREATE TABLE things ();"},
		{Version: 10, Name: "add_index", SQL: "CREATE INDEX x ON t (a);"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("migrations mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMigrationFilesRejectsDuplicateVersions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 2;")},
	}

	if _, err := readMigrationFiles(fsys); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("readMigrationFiles error = %v, want duplicate version error", err)
	}
}

func TestPendingSkipsApplied(t *testing.T) {
	t.Parallel()

	all := []Migration{{Version: 1, Name: "a"}, {Version: 2, Name: "b"}, {Version: 3, Name: "c"}}
	got := pending(all, map[int]bool{1: true, 3: true})

	if diff := cmp.Diff([]Migration{{Version: 2, Name: "b"}}, got); diff != "" {
		t.Errorf("pending mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Sub(embedded, "sql")
	if err != nil {
		t.Fatalf("fs.Sub returned error: %v", err)
	}
	got, err := readMigrationFiles(files)
	if err != nil {
		t.Fatalf("readMigrationFiles returned error: %v", err)
	}

	var names []string
	for _, m := range got {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{"create_palettes", "create_gradients"}, names); diff != "" {
		t.Errorf("embedded migrations mismatch (-want +got):\n%s", diff)
	}

	for _, table := range []string{"palettes", "gradients"} {
		found := false
		for _, m := range got {
			if strings.Contains(m.SQL, "CREATE TABLE IF NOT EXISTS "+table) {
				found = true
			}
		}
		if !found {
			t.Errorf("no migration creates table %s", table)
		}
	}
}
