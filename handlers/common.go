package handlers

// ErrorResponse is the body of every non-200 answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CompareResponse is the fixed schema for /compare-face results. Name is a
// pointer so a no-match serializes as an explicit null.
type CompareResponse struct {
	Message      string  `json:"message"`
	Name         *string `json:"name"`
	Confidence   string  `json:"confidence"`
	NotifyStatus string  `json:"notify_status,omitempty"`
}

var (
	// Predefined responses
	MissingImageResponse  = ErrorResponse{"image is required"}
	EmptyImageResponse    = ErrorResponse{"empty image data"}
	MissingFolderResponse = ErrorResponse{"folder_path is required"}
	EmptyGalleryResponse  = ErrorResponse{"no usable reference faces in folder"}
	NoMatchResponse       = CompareResponse{Message: "No Match Found", Confidence: "0%"}
)
