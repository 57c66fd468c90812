package faces

import (
	"os"

	"faceserver/config"
	"faceserver/utils"

	"github.com/Kagami/go-face"
)

// Default is the recognizer used by the handlers. Tests swap it for a fake.
var Default Recognizer

func Init(modelsDir string) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		panic(err)
	}
	Default = &dlibRecognizer{rec: rec}
}

type dlibRecognizer struct {
	rec *face.Recognizer
}

func (d *dlibRecognizer) File(path string) (Descriptor, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, false, err
	}
	found, err := d.recognize(data)
	if err != nil {
		return Descriptor{}, false, err
	}
	if len(found) == 0 {
		return Descriptor{}, false, nil
	}
	// Reference images may contain several faces; only the first one counts
	return found[0].Descriptor, true, nil
}

func (d *dlibRecognizer) Image(data []byte) ([]Face, error) {
	found, err := d.recognize(data)
	if err != nil {
		return nil, err
	}
	result := make([]Face, len(found))
	for i, f := range found {
		result[i] = Face{Rectangle: f.Rectangle, Descriptor: f.Descriptor}
	}
	return result, nil
}

// recognize normalizes the image to JPEG (dlib reads nothing else) and
// downscales huge images before running detection on them.
func (d *dlibRecognizer) recognize(data []byte) ([]face.Face, error) {
	jpegData, err := utils.ToJPEG(uint(config.PROBE_MAX_DIMENSION), data)
	if err != nil {
		return nil, err
	}
	return d.rec.Recognize(jpegData)
}

func (d *dlibRecognizer) Close() {
	d.rec.Close()
}
