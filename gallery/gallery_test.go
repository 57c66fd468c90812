package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"faceserver/faces"
)

type fakeRecognizer struct {
	refs  map[string]faces.Descriptor // basename -> descriptor; missing = no face
	errs  map[string]error
	calls []string
}

func (f *fakeRecognizer) File(path string) (faces.Descriptor, bool, error) {
	name := filepath.Base(path)
	f.calls = append(f.calls, name)
	if err := f.errs[name]; err != nil {
		return faces.Descriptor{}, false, err
	}
	d, ok := f.refs[name]
	return d, ok, nil
}

func (f *fakeRecognizer) Image(data []byte) ([]faces.Face, error) { return nil, nil }
func (f *fakeRecognizer) Close()                                  {}

func desc(v float32) faces.Descriptor {
	d := faces.Descriptor{}
	d[0] = v
	return d
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Bob.PNG", "alice.jpg", "corrupt.jpg", "empty.gif", "readme.txt"} {
		touch(t, dir, name)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	rec := &fakeRecognizer{
		refs: map[string]faces.Descriptor{
			"Bob.PNG":   desc(1),
			"alice.jpg": desc(2),
		},
		errs: map[string]error{"corrupt.jpg": errors.New("boom")},
	}

	g, report := Scan(dir, rec)

	// os.ReadDir returns entries sorted by name
	wantLabels := []string{"Bob", "alice"}
	var labels []string
	for _, e := range g {
		labels = append(labels, e.Label)
	}
	if !reflect.DeepEqual(labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", labels, wantLabels)
	}
	if g[1].Descriptor != desc(2) {
		t.Errorf("alice descriptor = %v, want %v", g[1].Descriptor, desc(2))
	}
	if !reflect.DeepEqual(report.Kept, []string{"Bob.PNG", "alice.jpg"}) {
		t.Errorf("kept = %v", report.Kept)
	}
	wantSkipped := []SkippedFile{
		{Name: "corrupt.jpg", Reason: "boom"},
		{Name: "empty.gif", Reason: "no face detected"},
	}
	if !reflect.DeepEqual(report.Skipped, wantSkipped) {
		t.Errorf("skipped = %v, want %v", report.Skipped, wantSkipped)
	}
	for _, call := range rec.calls {
		if call == "readme.txt" || call == "nested" {
			t.Errorf("recognizer called for filtered entry %s", call)
		}
	}
}

func TestScanMissingFolder(t *testing.T) {
	g, report := Scan(filepath.Join(t.TempDir(), "nope"), &fakeRecognizer{})
	if len(g) != 0 {
		t.Errorf("gallery = %v, want empty", g)
	}
	if len(report.Kept) != 0 || len(report.Skipped) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestScanCorruptFileNotFatal(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "bad.jpg")
	touch(t, dir, "carol.jpg")
	rec := &fakeRecognizer{
		refs: map[string]faces.Descriptor{"carol.jpg": desc(3)},
		errs: map[string]error{"bad.jpg": errors.New("not an image")},
	}
	g, _ := Scan(dir, rec)
	if len(g) != 1 || g[0].Label != "carol" {
		t.Errorf("gallery = %v, want just carol", g)
	}
}
