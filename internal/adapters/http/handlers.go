// Package httpadapter exposes usecase.Service over HTTP, one handler per
// operation in SPEC_FULL.md's route table.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/generator"
	"sudoku.dev/engine/internal/hint"
	"sudoku.dev/engine/internal/ports"
	"sudoku.dev/engine/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/unique", h.handleUnique)
	mux.HandleFunc("/api/parse", h.handleParse)
	mux.HandleFunc("/api/conflicts", h.handleConflicts)
	mux.HandleFunc("/api/serialize", h.handleSerialize)
	mux.HandleFunc("/api/deserialize", h.handleDeserialize)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/trace", h.handleTrace)
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)
	mux.HandleFunc("/api/generate/clues", h.handleGenerateClues)
	mux.HandleFunc("/api/generate/difficulty", h.handleGenerateDifficulty)
	mux.HandleFunc("/api/generate/category", h.handleGenerateCategory)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

var errMissingID = errors.New("httpadapter: missing id")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ---- Solve ----

type gridReq struct {
	Grid string `json:"grid"`
}

type solveResp struct {
	Board      string `json:"board"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, stats, err := h.UC.Solve(r.Context(), req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out.Values.String(),
		DurationMs: stats.Duration / int64(time.Millisecond),
		Nodes:      stats.Nodes,
	})
}

// ---- Unique ----

type uniqueResp struct {
	Unique     bool  `json:"unique"`
	DurationMs int64 `json:"durationMs"`
	Nodes      int   `json:"nodes"`
}

func (h *Handler) handleUnique(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unique, stats, err := h.UC.IsUnique(r.Context(), req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, uniqueResp{
		Unique:     unique,
		DurationMs: stats.Duration / int64(time.Millisecond),
		Nodes:      stats.Nodes,
	})
}

// ---- Parse ----

type parseResp struct {
	Board string `json:"board"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	st, err := h.UC.ParseGrid(req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResp{Board: st.Values.String()})
}

// ---- Conflicts ----

type conflictsResp struct {
	Conflicts []board.Conflict `json:"conflicts"`
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	conflicts, err := h.UC.Conflicts(req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, conflictsResp{Conflicts: conflicts})
}

// ---- Serialize / Deserialize ----

type serializeReq struct {
	Board string `json:"board"`
}
type serializeResp struct {
	Compact string `json:"compact"`
}

func (h *Handler) handleSerialize(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req serializeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := board.ParseString(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	compact, err := h.UC.Serialize(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, serializeResp{Compact: compact})
}

type deserializeResp struct {
	Board string `json:"board"`
}

func (h *Handler) handleDeserialize(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req serializeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := h.UC.Deserialize(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, deserializeResp{Board: v.String()})
}

// ---- Hint ----

type hintResp struct {
	Found bool       `json:"found"`
	Hint  *hint.Base `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hh, err := h.UC.GetHint(r.Context(), req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if hh == nil {
		writeJSON(w, http.StatusOK, hintResp{Found: false})
		return
	}
	info := hh.Info()
	writeJSON(w, http.StatusOK, hintResp{Found: true, Hint: &info})
}

// ---- Trace ----

type traceReq struct {
	Grid    string `json:"grid"`
	StepCap int    `json:"stepCap,omitempty"`
}

func (h *Handler) handleTrace(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req traceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cap := req.StepCap
	if cap <= 0 {
		cap = hint.DefaultStepCap
	}
	out, trace, err := h.UC.Trace(r.Context(), req.Grid, cap)
	if err != nil && err != hint.ErrNoLogicalProgress && err != hint.ErrOverbudget {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"board": out.Values.String(),
		"trace": trace,
	})
}

// ---- Evaluate ----

type evaluateResp struct {
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req gridReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d, cat, err := h.UC.EvaluatePuzzleDifficulty(r.Context(), req.Grid)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluateResp{Difficulty: d, Category: cat})
}

// ---- Generate ----

type generateCluesReq struct {
	Clues int `json:"clues"`
}

func (h *Handler) handleGenerateClues(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req generateCluesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	st, err := h.UC.GenerateWithClues(r.Context(), req.Clues)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResp{Board: st.Values.String()})
}

type generateDifficultyReq struct {
	Target      int `json:"target"`
	Tolerance   int `json:"tolerance"`
	MaxAttempts int `json:"maxAttempts,omitempty"`
}

func (h *Handler) handleGenerateDifficulty(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req generateDifficultyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := h.UC.GenerateWithDifficulty(r.Context(), generator.Options{
		Target:      req.Target,
		Tolerance:   req.Tolerance,
		MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type generateCategoryReq struct {
	Category    string `json:"category"`
	MaxAttempts int    `json:"maxAttempts,omitempty"`
}

func (h *Handler) handleGenerateCategory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req generateCategoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := h.UC.GenerateByCategory(r.Context(), req.Category, generator.Options{MaxAttempts: req.MaxAttempts})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Save / Load / List ----

type savePuzzleReq struct {
	ID         string `json:"id,omitempty"`
	Board      string `json:"board"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty int    `json:"difficulty,omitempty"`
	Category   string `json:"category,omitempty"`
}

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req savePuzzleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v, err := board.ParseString(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := req.ID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	p := &ports.Puzzle{
		ID:         id,
		Seed:       req.Seed,
		Values:     v,
		Difficulty: req.Difficulty,
		Category:   req.Category,
		CreatedAt:  time.Now().UnixNano(),
	}
	if err := h.UC.Save(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: id})
}

type loadReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, errMissingID)
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type listResp struct {
	Puzzles []ports.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
