package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"faceserver/config"
)

var httpClient = http.Client{Timeout: 5 * time.Second}

// Attendance is the payload posted to the configured webhook for every
// accepted match above the confidence threshold.
type Attendance struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
}

// MatchFound forwards an accepted match to the attendance webhook and returns
// a short status for the API response. Empty string when no webhook is
// configured. Failures never affect the match result itself.
func MatchFound(name, confidence string, score float64) string {
	if config.NOTIFY_URL == "" {
		return ""
	}
	if score < config.NOTIFY_MIN_CONFIDENCE {
		return "not sent: confidence too low"
	}
	notification := Attendance{Name: name, Confidence: confidence}
	status, err := notification.Send()
	if err != nil {
		return "failed: " + err.Error()
	}
	return status
}

// Send posts the payload, retrying on transport errors only. A reachable
// endpoint returning a non-200 still counts as delivered.
func (notification *Attendance) Send() (string, error) {
	var lastErr error
	for attempt := 0; attempt < config.NOTIFY_MAX_RETRIES; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(config.NOTIFY_RETRY_DELAY) * time.Second)
		}
		buf := bytes.Buffer{}
		json.NewEncoder(&buf).Encode(*notification)
		resp, err := httpClient.Post(config.NOTIFY_URL, "application/json", &buf)
		if err != nil {
			log.Printf("Attendance notify attempt %d: %v", attempt+1, err)
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return "sent", nil
		}
		buf.Reset()
		io.Copy(&buf, resp.Body)
		resp.Body.Close()
		log.Printf("Attendance notify status %d: %s", resp.StatusCode, buf.String())
		return fmt.Sprintf("sent, remote status %d", resp.StatusCode), nil
	}
	return "", lastErr
}
