// Package httpapi serves the archipelago analyses as a JSON API over a
// built, immutable settlement graph.
//
// Endpoints:
//
//	GET  /healthz                  liveness probe
//	GET  /api/v1/summary           counts and per-island populations
//	GET  /api/v1/islands           every island with its members
//	GET  /api/v1/islands/{name}    the island containing a settlement
//	POST /api/v1/routes            fewest-highway count between two settlements
//
// The graph is read-only after construction and every analysis keeps
// per-call state, so handlers run concurrently without locking.
package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/archipelago/core"
	"github.com/katalvlaran/archipelago/islands"
	"github.com/katalvlaran/archipelago/routes"
)

// Handler answers analysis queries over one settlement graph.
type Handler struct {
	graph  *core.Graph
	logger *slog.Logger
}

// NewHandler wraps the built graph for serving.
func NewHandler(graph *core.Graph, logger *slog.Logger) *Handler {
	return &Handler{graph: graph, logger: logger}
}

// NewRouter mounts all endpoints plus logging and CORS middleware.
func NewRouter(graph *core.Graph, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging(logger), CORS)
	NewHandler(graph, logger).RegisterRoutes(router)

	return router
}

// RegisterRoutes attaches the handler's endpoints to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods("GET")
	router.HandleFunc("/api/v1/summary", h.Summary).Methods("GET")
	router.HandleFunc("/api/v1/islands", h.Islands).Methods("GET")
	router.HandleFunc("/api/v1/islands/{name}", h.IslandFor).Methods("GET")
	router.HandleFunc("/api/v1/routes", h.MinRoute).Methods("POST", "OPTIONS")
}

type summaryResponse struct {
	Settlements     int     `json:"settlements"`
	Highways        int     `json:"highways"`
	Islands         int     `json:"islands"`
	TotalPopulation int64   `json:"total_population"`
	Populations     []int64 `json:"populations"`
}

type islandResponse struct {
	Index      int      `json:"index"`
	Population int64    `json:"population"`
	Members    []string `json:"members"`
}

type routeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type routeResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Highways int    `json:"highways"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("health check", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// Summary returns graph counts and island populations sorted descending.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sums, err := islands.Populations(h.graph, islands.WithContext(r.Context()))
	if err != nil {
		h.logger.Error("summary analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i] > sums[j] })

	writeJSON(w, http.StatusOK, summaryResponse{
		Settlements:     h.graph.SettlementCount(),
		Highways:        h.graph.HighwayCount(),
		Islands:         len(sums),
		TotalPopulation: h.graph.TotalPopulation(),
		Populations:     sums,
	})
}

// Islands returns every island in discovery order with sorted members.
func (h *Handler) Islands(w http.ResponseWriter, r *http.Request) {
	isles, err := islands.Islands(h.graph, islands.WithContext(r.Context()))
	if err != nil {
		h.logger.Error("island analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	payload := make([]islandResponse, len(isles))
	for i, isle := range isles {
		payload[i] = toIslandResponse(i, isle)
	}
	writeJSON(w, http.StatusOK, payload)
}

// IslandFor returns the island containing the named settlement.
func (h *Handler) IslandFor(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !h.graph.HasSettlement(name) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown settlement %q", name))
		return
	}

	isles, err := islands.Islands(h.graph, islands.WithContext(r.Context()))
	if err != nil {
		h.logger.Error("island analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	for i, isle := range isles {
		if isle.Members.Contains(name) {
			writeJSON(w, http.StatusOK, toIslandResponse(i, isle))
			return
		}
	}

	// Registered settlements always belong to an island; reaching here
	// means the graph mutated mid-flight, which the lifecycle forbids.
	writeError(w, http.StatusInternalServerError, "island lookup failed")
}

// MinRoute answers one fewest-highway query. Unreachable endpoints yield
// highways == -1; unknown settlements are 404, malformed bodies 400.
func (h *Handler) MinRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "both from and to are required")
		return
	}
	for _, name := range []string{req.From, req.To} {
		if !h.graph.HasSettlement(name) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown settlement %q", name))
			return
		}
	}

	hops, err := routes.MinHighways(h.graph, req.From, req.To, routes.WithContext(r.Context()))
	if err != nil {
		h.logger.Error("route query failed", "from", req.From, "to", req.To, "error", err)
		writeError(w, http.StatusInternalServerError, "route query failed")
		return
	}
	writeJSON(w, http.StatusOK, routeResponse{From: req.From, To: req.To, Highways: hops})
}

func toIslandResponse(index int, isle islands.Island) islandResponse {
	members := isle.Members.ToSlice()
	sort.Strings(members)

	return islandResponse{Index: index, Population: isle.Population, Members: members}
}
