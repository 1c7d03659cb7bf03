package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tsawler/quill"
	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/validate"
)

type application struct {
	editor *quill.Editor
}

// requestID tags every request with a correlation id for log lines.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// resultResponse is the wire form of a quill.Result.
type resultResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

func writeResult(w http.ResponseWriter, res quill.Result) {
	out := resultResponse{
		Success:  res.Success,
		Message:  res.Message,
		Metadata: res.Metadata,
	}
	for _, warning := range res.Warnings {
		out.Warnings = append(out.Warnings, warning.Op+": "+warning.Message)
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resultResponse{Success: false, Message: message})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

type batchRequest struct {
	Operations []request.Operation `json:"operations"`
}

func (app *application) executeBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	if !decode(w, r, &body) {
		return
	}
	writeResult(w, app.editor.ExecuteBatch(r.Context(), mux.Vars(r)["id"], body.Operations))
}

// createTableRequest decodes cells as pointers so a JSON null cell can be
// rejected with a message naming it instead of silently becoming "".
type createTableRequest struct {
	Data        [][]*string `json:"data"`
	Index       int64       `json:"index"`
	BoldHeaders bool        `json:"bold_headers"`
}

func (app *application) createTable(w http.ResponseWriter, r *http.Request) {
	var body createTableRequest
	if !decode(w, r, &body) {
		return
	}
	grid, ok, msg := validate.CellGrid(body.Data)
	if !ok {
		writeResult(w, quill.Result{Success: false, Message: msg})
		return
	}
	writeResult(w, app.editor.CreateTable(r.Context(), mux.Vars(r)["id"], grid, body.Index, body.BoldHeaders))
}

type populateTableRequest struct {
	Data          [][]*string `json:"data"`
	ClearExisting bool        `json:"clear_existing"`
}

func (app *application) populateTable(w http.ResponseWriter, r *http.Request) {
	var body populateTableRequest
	if !decode(w, r, &body) {
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "table index must be an integer")
		return
	}
	grid, ok, msg := validate.CellGrid(body.Data)
	if !ok {
		writeResult(w, quill.Result{Success: false, Message: msg})
		return
	}
	writeResult(w, app.editor.PopulateTable(r.Context(), mux.Vars(r)["id"], index, grid, body.ClearExisting))
}

func (app *application) inspectStructure(w http.ResponseWriter, r *http.Request) {
	writeResult(w, app.editor.InspectStructure(r.Context(), mux.Vars(r)["id"]))
}

func (app *application) debugTable(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "table index must be an integer")
		return
	}
	writeResult(w, app.editor.DebugTableStructure(r.Context(), mux.Vars(r)["id"], index))
}

type headerFooterRequest struct {
	SectionType string `json:"section_type"`
	Content     string `json:"content"`
	Variant     string `json:"variant"`
}

func (app *application) updateHeaderFooter(w http.ResponseWriter, r *http.Request) {
	var body headerFooterRequest
	if !decode(w, r, &body) {
		return
	}
	if body.Variant == "" {
		body.Variant = "DEFAULT"
	}
	writeResult(w, app.editor.UpdateHeaderFooter(r.Context(), mux.Vars(r)["id"],
		body.SectionType, body.Content, body.Variant))
}

func (app *application) createHeaderFooter(w http.ResponseWriter, r *http.Request) {
	var body headerFooterRequest
	if !decode(w, r, &body) {
		return
	}
	if body.Variant == "" {
		body.Variant = "DEFAULT"
	}
	writeResult(w, app.editor.CreateHeaderFooter(r.Context(), mux.Vars(r)["id"],
		body.SectionType, body.Variant))
}

type insertImageRequest struct {
	URI    string  `json:"uri"`
	Index  int64   `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (app *application) insertImage(w http.ResponseWriter, r *http.Request) {
	var body insertImageRequest
	if !decode(w, r, &body) {
		return
	}
	writeResult(w, app.editor.InsertImage(r.Context(), mux.Vars(r)["id"],
		body.URI, body.Index, body.Width, body.Height))
}

type bulletsRequest struct {
	StartIndex int64  `json:"start_index"`
	EndIndex   int64  `json:"end_index"`
	Preset     string `json:"preset"`
}

func (app *application) applyBullets(w http.ResponseWriter, r *http.Request) {
	var body bulletsRequest
	if !decode(w, r, &body) {
		return
	}
	writeResult(w, app.editor.ApplyBullets(r.Context(), mux.Vars(r)["id"],
		body.StartIndex, body.EndIndex, body.Preset))
}
