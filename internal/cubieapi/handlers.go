package cubieapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/behrlich/cubie/internal/cubie"
	"github.com/behrlich/cubie/internal/cubienotation"
	"github.com/behrlich/cubie/internal/facelet"
)

// CoordinatesRequest names the cube either by a move scramble applied
// to a solved cube, or directly by a facelet string. Exactly one of
// the two fields should be set.
type CoordinatesRequest struct {
	Scramble string `json:"scramble"`
	Facelets string `json:"facelets"`
}

// CoordinatesResponse reports the five coordinates internal/cubie
// defines, plus whether the resulting cube is a legal state.
type CoordinatesResponse struct {
	CornerOrientation int  `json:"corner_orientation"`
	EdgeOrientation   int  `json:"edge_orientation"`
	UDSlice           int  `json:"ud_slice"`
	CornerPermutation int  `json:"corner_permutation"`
	EdgePermutation   int  `json:"edge_permutation"`
	Valid             bool `json:"valid"`
}

func (s *Server) handleCoordinates(w http.ResponseWriter, r *http.Request) {
	var req CoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	c, err := cubeFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := CoordinatesResponse{
		CornerOrientation: cubie.CornerOrientationCoord(c),
		EdgeOrientation:   cubie.EdgeOrientationCoord(c),
		UDSlice:           cubie.UDSliceCoord(c),
		CornerPermutation: cubie.CornerPermutationCoord(c),
		EdgePermutation:   cubie.EdgePermutationCoord(c),
		Valid:             len(c.Validate()) == 0,
	}
	writeJSON(w, http.StatusOK, resp)
}

func cubeFromRequest(req CoordinatesRequest) (cubie.CubieCube, error) {
	switch {
	case req.Facelets != "":
		fc, err := facelet.ParseFacelets(req.Facelets)
		if err != nil {
			return cubie.CubieCube{}, fmt.Errorf("parsing facelets: %w", err)
		}
		c, err := facelet.ToCubie(fc)
		if err != nil {
			return cubie.CubieCube{}, fmt.Errorf("converting facelets: %w", err)
		}
		return c, nil
	default:
		turns, err := cubienotation.ParseSequence(req.Scramble)
		if err != nil {
			return cubie.CubieCube{}, fmt.Errorf("parsing scramble: %w", err)
		}
		c := cubie.Solved()
		c.ApplyTurns(turns)
		return c, nil
	}
}

// ValidateRequest names the cube to check by its facelet string.
type ValidateRequest struct {
	Facelets string `json:"facelets"`
}

// ValidateResponse reports whether the cube is a legal state and, if
// not, which invariants it violates.
type ValidateResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	fc, err := facelet.ParseFacelets(req.Facelets)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parsing facelets: %w", err))
		return
	}
	c, err := facelet.ToCubie(fc)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("converting facelets: %w", err))
		return
	}

	errs := c.Validate()
	resp := ValidateResponse{Valid: len(errs) == 0}
	for _, e := range errs {
		resp.Violations = append(resp.Violations, e.Error())
	}
	writeJSON(w, http.StatusOK, resp)
}

// SymmetryResponse renders a generated symmetry's effect on the solved
// cube and names its inverse index, a smoke test for the symmetry
// table (every entry should render the solved cube, per scenario S5).
type SymmetryResponse struct {
	Index        int    `json:"index"`
	InverseIndex int    `json:"inverse_index"`
	Facelets     string `json:"facelets"`
}

func (s *Server) handleSymmetry(w http.ResponseWriter, r *http.Request) {
	indexStr := mux.Vars(r)["index"]
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 || index >= cubie.SymmetryCount() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("symmetry index must be in [0,%d), got %q", cubie.SymmetryCount(), indexStr))
		return
	}

	c := cubie.Symmetry(cubie.Solved(), index)
	resp := SymmetryResponse{
		Index:        index,
		InverseIndex: cubie.InverseIndex(index),
		Facelets:     facelet.FromCubie(c).Digits(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
