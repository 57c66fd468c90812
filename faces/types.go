package faces

import (
	"image"
	"math"

	"github.com/Kagami/go-face"
)

// Descriptor is dlib's 128-dimensional face embedding. Euclidean distance
// between two descriptors approximates how dissimilar the faces look.
type Descriptor = face.Descriptor

// Face is one detected face in a probe image, in detection order.
type Face struct {
	Rectangle  image.Rectangle
	Descriptor Descriptor
}

// Recognizer is the face detection/encoding capability the rest of the server
// is built on. The real implementation wraps go-face; tests substitute fakes.
type Recognizer interface {
	// File returns the descriptor of the first face found in an image file.
	// ok is false when the file decodes fine but contains no face.
	File(path string) (desc Descriptor, ok bool, err error)
	// Image returns all faces found in the raw image data.
	Image(data []byte) ([]Face, error)
	Close()
}

// Distance returns the euclidean distance between two descriptors, the scale
// go-face tolerance values are defined on.
func Distance(a, b Descriptor) float64 {
	sum := 0.0
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
