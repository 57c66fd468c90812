package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"faceserver/config"
	"faceserver/faces"
	"faceserver/gallery"
	"faceserver/notify"

	"github.com/gin-gonic/gin"
)

// CompareFace rebuilds the reference gallery from the posted folder_path and
// matches the uploaded image against it. The gallery is built from scratch on
// every call - nothing is cached between requests.
func CompareFace(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, MissingImageResponse)
		return
	}
	folder := c.PostForm("folder_path")
	if folder == "" {
		c.JSON(http.StatusBadRequest, MissingFolderResponse)
		return
	}

	g, report := gallery.Scan(folder, faces.Default)
	if config.DEBUG_MODE {
		log.Printf("Gallery %s: %d reference faces, %d skipped", folder, len(report.Kept), len(report.Skipped))
	}
	if len(g) == 0 {
		c.JSON(http.StatusNotFound, EmptyGalleryResponse)
		return
	}

	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{"error reading the image: " + err.Error()})
		return
	}
	data, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{"error reading the image: " + err.Error()})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, EmptyImageResponse)
		return
	}

	probe, err := faces.Default.Image(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{"error processing the image: " + err.Error()})
		return
	}

	countCompare(folder)
	result := gallery.Match(probe, g, config.FACE_TOLERANCE)
	if !result.Matched {
		c.JSON(http.StatusOK, NoMatchResponse)
		return
	}
	countMatch(folder)

	confidence := fmt.Sprintf("%.2f%%", result.Confidence)
	log.Printf("Matched %s with confidence %s", result.Label, confidence)
	c.JSON(http.StatusOK, CompareResponse{
		Message:      "Match Found! Name: " + result.Label,
		Name:         &result.Label,
		Confidence:   confidence,
		NotifyStatus: notify.MatchFound(result.Label, confidence, result.Confidence),
	})
}
