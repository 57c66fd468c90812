package gallery

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"faceserver/faces"
)

// Entry pairs a reference identity with its embedding. The label is the
// reference image's filename without the extension.
type Entry struct {
	Label      string
	Descriptor faces.Descriptor
}

type Gallery []Entry

type SkippedFile struct {
	Name   string
	Reason string
}

// ScanReport records what happened to each candidate file during a scan,
// so skips are visible to the caller and not just a log line.
type ScanReport struct {
	Kept    []string
	Skipped []SkippedFile
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Scan builds a gallery from the image files directly inside dir (not
// recursive). Files that fail to load or contain no face are skipped and the
// scan continues. A missing or unreadable dir yields an empty gallery - that
// means "no known faces", not an error.
func Scan(dir string, rec faces.Recognizer) (Gallery, ScanReport) {
	report := ScanReport{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Gallery folder %s not readable: %v", dir, err)
		return nil, report
	}
	var g Gallery
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !imageExtensions[ext] {
			continue
		}
		desc, ok, err := rec.File(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Error loading reference %s: %v", name, err)
			report.Skipped = append(report.Skipped, SkippedFile{Name: name, Reason: err.Error()})
			continue
		}
		if !ok {
			log.Printf("No face detected in reference %s", name)
			report.Skipped = append(report.Skipped, SkippedFile{Name: name, Reason: "no face detected"})
			continue
		}
		g = append(g, Entry{
			Label:      strings.TrimSuffix(name, filepath.Ext(name)),
			Descriptor: desc,
		})
		report.Kept = append(report.Kept, name)
	}
	return g, report
}
