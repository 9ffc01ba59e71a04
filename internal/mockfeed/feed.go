package mockfeed

import (
	"net/http"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/nexusscout/chronicle-harvester/internal/httputil"
	"github.com/nexusscout/chronicle-harvester/internal/models"
)

// Generate returns n records shaped like jsonplaceholder posts, so the
// harvester can be exercised offline against realistic-looking data.
func Generate(n int) []models.Record {
	records := make([]models.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.Record{
			"userId": gofakeit.Number(1, 10),
			"id":     i,
			"title":  gofakeit.Sentence(5),
			"body":   gofakeit.Paragraph(1, 3, 8, "\n"),
		})
	}
	return records
}

// Handler serves a JSON array of generated posts at /posts. The record count
// defaults to defaultCount and can be overridden per request with ?count=N.
func Handler(defaultCount int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		count := defaultCount
		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				httputil.WriteError(w, http.StatusBadRequest, "count must be a non-negative integer")
				return
			}
			count = n
		}
		httputil.WriteJSON(w, http.StatusOK, Generate(count))
	})
	return mux
}
