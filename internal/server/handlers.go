package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pratama/kisi-kisi-generator/internal/export"
	"github.com/pratama/kisi-kisi-generator/internal/rendering"
	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// writeJSON writes v as a JSON response.
//
//nolint:errcheck // the client went away; nothing to recover
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetForm(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Form())
}

func (s *Server) handleSetForm(w http.ResponseWriter, r *http.Request) {
	var form types.FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.ctrl.SetForm(form); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.Form())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	content, err := s.ctrl.Generate(r.Context())
	if err != nil {
		s.log.Warn("generation failed", zap.Error(err))
		writeError(w, httpStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleGetContent(w http.ResponseWriter, _ *http.Request) {
	content := s.ctrl.Content()
	if content == nil {
		writeError(w, http.StatusNotFound, "no generated content; run generate first")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	content := s.ctrl.Content()
	if content == nil {
		writeError(w, http.StatusNotFound, "no generated content; run generate first")
		return
	}

	form := s.ctrl.Form()
	f, err := export.BuildWorkbook(content)
	if err != nil {
		s.log.Error("workbook build failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(form)))
	if err := f.Write(w); err != nil {
		s.log.Error("workbook write failed", zap.Error(err))
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, _ *http.Request) {
	html, err := rendering.RenderHTML(s.ctrl.Content(), s.ctrl.Form())
	if err != nil {
		s.log.Error("render failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handlePrintPDF(w http.ResponseWriter, r *http.Request) {
	html, err := rendering.RenderHTML(s.ctrl.Content(), s.ctrl.Form())
	if err != nil {
		s.log.Error("render failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	pdf, err := rendering.PrintToPDF(r.Context(), html)
	if err != nil {
		s.log.Error("pdf print failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to print page to PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(pdf)
}
