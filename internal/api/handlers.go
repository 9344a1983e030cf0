package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

type stepResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	DataURI string `json:"data_uri"`
}

type changesResponse struct {
	ContainsChanges bool `json:"contains_changes"`
}

type imageResponse struct {
	ContainsChanges bool    `json:"contains_changes"`
	DiffDataURI     *string `json:"diff_data_uri"`
}

type lineStep struct {
	Side   m.Side `json:"side"`
	StepID *int64 `json:"step_id"`
}

type lineResponse struct {
	lineStep
	Other lineStep `json:"other"`
}

type recordResponse struct {
	StepID *int64 `json:"step_id"`
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleRunTestCases(w http.ResponseWriter, r *http.Request) {
	runID, err := idParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid run id"})
		return
	}

	cases, err := s.store.GetRunTestCases(r.Context(), runID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cases)
}

func (s *Server) handleRunDiff(w http.ResponseWriter, r *http.Request) {
	left, right, err := idPair(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid run id"})
		return
	}

	diff, err := s.comparator.CompareRuns(r.Context(), left, right)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, diff)
}

// handleRunDiffLine resolves line N of a test case in the run diff to its step,
// and reports the step at the same line on the other side.
// Query: case=<test case name>&side=left|right&line=N.
func (s *Server) handleRunDiffLine(w http.ResponseWriter, r *http.Request) {
	left, right, err := idPair(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid run id"})
		return
	}

	query := r.URL.Query()

	side, err := m.ParseSide(query.Get("side"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	line, err := strconv.Atoi(query.Get("line"))
	if err != nil || line < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "line must be a positive number"})
		return
	}

	diff, err := s.comparator.CompareRuns(r.Context(), left, right)
	if err != nil {
		writeError(w, err)
		return
	}

	name := query.Get("case")

	writeJSON(w, http.StatusOK, lineResponse{
		lineStep: lookupLine(diff.LineIDs, name, side, line),
		Other:    lookupLine(diff.LineIDs, name, side.Opposite(), line),
	})
}

func lookupLine(ids m.RunLineIDs, name string, side m.Side, line int) lineStep {
	result := lineStep{Side: side}
	if id, ok := ids.Lookup(name, side, line); ok {
		result.StepID = &id
	}

	return result
}

func (s *Server) handleTestCaseDiff(w http.ResponseWriter, r *http.Request) {
	left, right, err := idPair(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid test case id"})
		return
	}

	diff, err := s.comparator.CompareTestCases(r.Context(), left, right)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, diff)
}

func (s *Server) handleGetStep(w http.ResponseWriter, r *http.Request) {
	stepID, err := idParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid step id"})
		return
	}

	step, err := s.store.GetStep(r.Context(), stepID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stepResponse{ID: step.ID, Name: step.Name, DataURI: step.DataURI})
}

// handleStepChanges answers false for ids that are not numbers.
func (s *Server) handleStepChanges(w http.ResponseWriter, r *http.Request) {
	left, right, err := idPair(r)
	if err != nil {
		w.Header().Set("Cache-Control", stepCacheControl)
		writeJSON(w, http.StatusOK, changesResponse{})

		return
	}

	result, err := s.comparator.CompareSteps(r.Context(), left, right)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", stepCacheControl)
	writeJSON(w, http.StatusOK, changesResponse{ContainsChanges: result.ContainsChanges})
}

func (s *Server) handleStepImage(w http.ResponseWriter, r *http.Request) {
	left, right, err := idPair(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid step id"})
		return
	}

	result, err := s.comparator.CompareSteps(r.Context(), left, right)
	if err != nil {
		writeError(w, err)
		return
	}

	response := imageResponse{ContainsChanges: result.ContainsChanges}
	if result.ContainsChanges {
		response.DiffDataURI = &result.DiffDataURI
	}

	w.Header().Set("Cache-Control", stepCacheControl)
	writeJSON(w, http.StatusOK, response)
}

// handleRecordStep ingests one step. Every failure answers {"step_id": null}.
func (s *Server) handleRecordStep(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Failed to decode step record", "error", err)
		writeJSON(w, http.StatusOK, recordResponse{})

		return
	}

	step, err := s.recorder.RecordStep(r.Context(), req.toRecord())
	if err != nil {
		slog.Error("Failed to record step", "run", string(req.RunID), "testCase", req.TestCaseName,
			"step", req.StepName, "error", err)
		writeJSON(w, http.StatusOK, recordResponse{})

		return
	}

	writeJSON(w, http.StatusOK, recordResponse{StepID: &step.ID})
}

type recordRequest struct {
	RunID        runName       `json:"run_id"`
	RunTags      []string      `json:"run_tags"`
	TestCaseName string        `json:"test_case_name"`
	StepName     string        `json:"step_name"`
	ImageURI     string        `json:"img_base64_url"`
	ParentStepID *int64        `json:"parent_step_id"`
	IgnoreAreas  []m.Rectangle `json:"ignore_areas"`
}

func (req recordRequest) toRecord() m.StepRecord {
	return m.StepRecord{
		RunName:      string(req.RunID),
		RunTags:      req.RunTags,
		TestCaseName: req.TestCaseName,
		StepName:     req.StepName,
		DataURI:      req.ImageURI,
		ParentStepID: req.ParentStepID,
		IgnoreAreas:  req.IgnoreAreas,
	}
}

// runName accepts the run identifier as a JSON string or number.
type runName string

func (n *runName) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*n = runName(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("run_id must be a string or a number: %w", err)
	}

	*n = runName(number.String())

	return nil
}
