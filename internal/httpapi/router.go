package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/middleware"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/vendor"
)

// MountedVendor pairs a vendor service with its hub path prefix.
type MountedVendor struct {
	Slug    string
	Service *vendor.Service
}

// NewRouter mounts every vendor under its own slug. Each vendor answers
// POST /{slug}/v1/quotes independently; the hub itself only adds health and
// roster endpoints.
func NewRouter(vendors []MountedVendor) http.Handler {
	mux := http.NewServeMux()

	roster := make([]map[string]any, 0, len(vendors))
	for _, mv := range vendors {
		mux.HandleFunc("POST /"+mv.Slug+"/v1/quotes", mv.Service.HandleQuote)
		p := mv.Service.Policy()
		roster = append(roster, map[string]any{
			"slug":        mv.Slug,
			"vendor_id":   p.VendorID,
			"name":        p.Name,
			"reliability": p.Reliability,
		})
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"vendors": len(vendors),
		})
	})
	mux.HandleFunc("GET /vendors", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"vendors": roster})
	})

	return middleware.RequestID(middleware.Logging(middleware.Recovery(mux)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
