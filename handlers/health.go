package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Per-folder counters; the same folder may be hit by concurrent requests
var (
	compares = cmap.New[uint64]()
	matches  = cmap.New[uint64]()
)

func countCompare(folder string) { bump(compares, folder) }
func countMatch(folder string)   { bump(matches, folder) }

func bump(m cmap.ConcurrentMap[string, uint64], folder string) {
	m.Upsert(folder, 1, func(exist bool, valueInMap, newValue uint64) uint64 {
		if exist {
			return valueInMap + 1
		}
		return newValue
	})
}

func total(m cmap.ConcurrentMap[string, uint64]) (sum uint64) {
	for item := range m.IterBuffered() {
		sum += item.Val
	}
	return
}

type HealthResponse struct {
	Status   string `json:"status"`
	Compares uint64 `json:"compares"`
	Matches  uint64 `json:"matches"`
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Compares: total(compares),
		Matches:  total(matches),
	})
}
