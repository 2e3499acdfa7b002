// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/log/testlog"
)

func TestNilFileSet(t *testing.T) {
	fset := (FileSet)(nil)
	if _, ok := fset.Get("foo", "bar"); ok {
		t.Error("Get(...) ok = true; want false")
	}
	if _, ok := fset.Lookup("foo", "bar"); ok {
		t.Error("Lookup(...) ok = true; want false")
	}
	if got := fset.SectionNames(); len(got) > 0 {
		t.Errorf("SectionNames() = %q; want empty", got)
	}
	if fset.HasSection("") {
		t.Error("HasSection(\"\") = true; want false")
	}
}

func TestFileSetAccess(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		section string
		key     string
		want    string
		wantOK  bool
	}{
		{
			name:    "ExistsInFirst",
			sources: []string{"FOO=bar\n", "BAZ=quux\n"},
			section: "",
			key:     "FOO",
			want:    "bar",
			wantOK:  true,
		},
		{
			name:    "ExistsInSecond",
			sources: []string{"FOO=bar\n", "BAZ=quux\n"},
			section: "",
			key:     "BAZ",
			want:    "quux",
			wantOK:  true,
		},
		{
			name:    "DoesNotExist",
			sources: []string{"FOO=bar\n", "BAZ=quux\n"},
			section: "",
			key:     "bork",
		},
		{
			name:    "FirstWins",
			sources: []string{"FOO=bar\n", "FOO=baz\n"},
			section: "",
			key:     "FOO",
			want:    "bar",
			wantOK:  true,
		},
		{
			name: "Section",
			sources: []string{
				"[foo]\n" +
					"something=else\n",
				"[foo]\n" +
					"bar=baz\n" +
					"[xyzzy]\n" +
					"bork=bork\n",
			},
			section: "foo",
			key:     "bar",
			want:    "baz",
			wantOK:  true,
		},
		{
			name:    "NilFile",
			sources: []string{"", "FOO=bar\n"},
			section: "",
			key:     "FOO",
			want:    "bar",
			wantOK:  true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var fset FileSet
			for _, src := range test.sources {
				var f *File
				if src != "" {
					var err error
					f, err = ParseString(src, nil)
					if err != nil {
						t.Fatal(err)
					}
				}
				fset = append(fset, f)
			}
			got, ok := fset.Get(test.section, test.key)
			if got != test.want || ok != test.wantOK {
				t.Errorf("fset.Get(%q, %q) = %q, %t; want %q, %t", test.section, test.key, got, ok, test.want, test.wantOK)
			}
		})
	}
}

func TestFileSetSectionNames(t *testing.T) {
	var fset FileSet
	for _, src := range []string{"[b]\nx=1\n[a]\ny=2\n", "top=1\n[a]\nz=3\n[c]\n"} {
		f, err := ParseString(src, nil)
		if err != nil {
			t.Fatal(err)
		}
		fset = append(fset, f)
	}
	want := []string{"b", "a", "", "c"}
	if diff := cmp.Diff(want, fset.SectionNames()); diff != "" {
		t.Errorf("SectionNames() (-want +got):\n%s", diff)
	}
	if !fset.HasSection("c") {
		t.Error("HasSection(\"c\") = false")
	}
}

func TestLoadSave(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")
	const source = "; Application\n[app]\nname = demo\n;Verbose logging\ndebug=yes\n"
	if err := os.WriteFile(path, []byte(source), 0o666); err != nil {
		t.Fatal(err)
	}

	f, err := Load(ctx, path, nil)
	if err != nil {
		t.Fatal("Load:", err)
	}
	debug, err := f.Section("app").Field("debug").Bool()
	if err != nil || !debug {
		t.Errorf("app.debug = %t, %v; want true, <nil>", debug, err)
	}
	f.Section("app").Field("debug").SetBool(false)
	f.Set("app", "retries", "3")
	if err := f.Save(ctx, path); err != nil {
		t.Fatal("Save:", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	const want = "; Application\n[app]\nname=demo\n;Verbose logging\ndebug=false\nretries=3\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("saved file (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	dir := t.TempDir()

	_, err := Load(ctx, filepath.Join(dir, "missing.ini"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) = %v; want %v", err, fs.ErrNotExist)
	}

	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("a=1\n[oops\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	_, err = Load(ctx, bad, nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load(bad) = %v; want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("ParseError.Line = %d; want 2", perr.Line)
	}
}

func TestLoadFiles(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	dir := t.TempDir()
	user := filepath.Join(dir, "user.ini")
	system := filepath.Join(dir, "system.ini")
	if err := os.WriteFile(system, []byte("[core]\neditor=vi\npager=less\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("[core]\neditor=emacs\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	fset, err := LoadFiles(ctx, nil, user, filepath.Join(dir, "missing.ini"), system)
	if err != nil {
		t.Fatal("LoadFiles:", err)
	}
	if len(fset) != 3 {
		t.Fatalf("len(fset) = %d; want 3", len(fset))
	}
	if fset[1] != nil {
		t.Error("fset[1] != nil for missing file")
	}
	if got, _ := fset.Get("core", "editor"); got != "emacs" {
		t.Errorf("core.editor = %q; want \"emacs\"", got)
	}
	if got, _ := fset.Get("core", "pager"); got != "less" {
		t.Errorf("core.pager = %q; want \"less\"", got)
	}

	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("nope\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFiles(ctx, nil, user, bad); err == nil {
		t.Error("LoadFiles with malformed file did not return an error")
	}
}
