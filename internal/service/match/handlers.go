package match

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	svcErr "github.com/pokojowo/match-service/internal/errors"
	"github.com/pokojowo/match-service/internal/matching"
	"github.com/pokojowo/match-service/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BatchResponse is the JSON body of the ranked-matches endpoint.
type BatchResponse struct {
	Matches                []matching.Result           `json:"matches"`
	TotalCandidates        int                         `json:"totalCandidates"`
	FilteredByDealBreakers int                         `json:"filteredByDealBreakers"`
	TotalMatches           int                         `json:"totalMatches"`
	Skipped                []matching.SkippedCandidate `json:"skipped,omitempty"`
	Stats                  matching.BatchStats         `json:"stats"`
	NextPageToken          string                      `json:"nextPageToken,omitempty"`
}

// CountResponse is the JSON body of the match-count endpoint.
type CountResponse struct {
	Count int `json:"count"`
}

// ValidateWeightsRequest carries a weight vector to check.
type ValidateWeightsRequest struct {
	Weights matching.Weights `json:"weights"`
}

// handleGetMatches serves GET /v1/users/{userID}/matches.
//
// Query parameters:
//   - minScore: drop matches below this overall score
//   - limit:    page size (default 20, max 100)
//   - pageToken: opaque cursor from a previous response; pins minScore
func (s *Service) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		svcErr.BadRequest(w, "userID must be a valid uint64")
		return
	}

	limit := defaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			svcErr.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = min(n, maxPageSize)
	}

	minScore := 0
	if v := r.URL.Query().Get("minScore"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			svcErr.BadRequest(w, "minScore must be in 0-100")
			return
		}
		minScore = n
	}

	cursor, err := pagination.Decode(r.URL.Query().Get("pageToken"))
	if err != nil {
		svcErr.BadRequest(w, err.Error())
		return
	}
	if cursor.MinScore > 0 {
		// The token pins the filter of the first page.
		minScore = cursor.MinScore
	}

	s.appCtx.Logger.Debug("batch match requested",
		"viewer", viewerID, "min_score", minScore, "limit", limit, "offset", cursor.Offset)

	batch, err := s.ComputeBatch(r.Context(), viewerID, matching.BatchOptions{
		MinScore: minScore,
		Limit:    limit,
		Offset:   cursor.Offset,
	})
	if err != nil {
		s.appCtx.Logger.Error("batch match failed", "viewer", viewerID, "err", err)
		svcErr.Write(w, err)
		return
	}

	resp := BatchResponse{
		Matches:                batch.Matches,
		TotalCandidates:        batch.TotalCandidates,
		FilteredByDealBreakers: batch.FilteredByDealBreakers,
		TotalMatches:           batch.TotalMatches,
		Skipped:                batch.Skipped,
		Stats:                  batch.Stats,
	}
	if next := cursor.Offset + len(batch.Matches); next < batch.TotalMatches {
		token, err := pagination.Encode(pagination.Cursor{Offset: next, MinScore: minScore})
		if err == nil {
			resp.NextPageToken = token
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetPairMatch serves GET /v1/users/{userID}/matches/{candidateID}.
func (s *Service) handleGetPairMatch(w http.ResponseWriter, r *http.Request) {
	viewerID, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		svcErr.BadRequest(w, "userID must be a valid uint64")
		return
	}
	candidateID, err := parseID(chi.URLParam(r, "candidateID"))
	if err != nil {
		svcErr.BadRequest(w, "candidateID must be a valid uint64")
		return
	}
	if viewerID == candidateID {
		svcErr.BadRequest(w, "cannot match a user against themselves")
		return
	}

	result, err := s.ComputePair(r.Context(), viewerID, candidateID)
	if err != nil {
		s.appCtx.Logger.Error("pair match failed",
			"viewer", viewerID, "candidate", candidateID, "err", err)
		svcErr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleCountMatches serves GET /v1/users/{userID}/matches/count.
func (s *Service) handleCountMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		svcErr.BadRequest(w, "userID must be a valid uint64")
		return
	}

	count, err := s.CountMatches(r.Context(), viewerID)
	if err != nil {
		svcErr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

// handleValidateWeights serves POST /v1/weights/validate.
func (s *Service) handleValidateWeights(w http.ResponseWriter, r *http.Request) {
	var req ValidateWeightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		svcErr.BadRequest(w, "invalid request body")
		return
	}
	if len(req.Weights) == 0 {
		svcErr.BadRequest(w, "weights is required")
		return
	}

	if err := s.ValidateWeights(req.Weights); err != nil {
		svcErr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
