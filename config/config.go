package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BIND_ADDRESS = "0.0.0.0:3000"
	TLS_DOMAINS  = ""       // e.g. "example.com,example2.com"
	MODELS_DIR   = "models" // Directory with the dlib model files used by go-face
	DEBUG_MODE   = true
	// Maximum descriptor distance for a gallery entry to count as a match.
	// This is on go-face's euclidean distance scale.
	FACE_TOLERANCE = 0.6
	// Images with a longer edge get downscaled before face detection
	PROBE_MAX_DIMENSION = 1280
	NOTIFY_URL          = "" // Accepted matches are POSTed here when set

	NOTIFY_MIN_CONFIDENCE = 65.0
	NOTIFY_MAX_RETRIES    = 3
	NOTIFY_RETRY_DELAY    = 1 // seconds between retry attempts
)

func init() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MODELS_DIR", &MODELS_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvFloat("FACE_TOLERANCE", &FACE_TOLERANCE)
	readEnvInt("PROBE_MAX_DIMENSION", &PROBE_MAX_DIMENSION)
	readEnvString("NOTIFY_URL", &NOTIFY_URL)
	readEnvFloat("NOTIFY_MIN_CONFIDENCE", &NOTIFY_MIN_CONFIDENCE)
	readEnvInt("NOTIFY_MAX_RETRIES", &NOTIFY_MAX_RETRIES)
	readEnvInt("NOTIFY_RETRY_DELAY", &NOTIFY_RETRY_DELAY)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
