package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcdickinson/apidocs/internal/markdown"
	"github.com/jcdickinson/apidocs/internal/rpc"
)

func (s *Server) handleDocsQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.servePage(w, q.Get("tab"), q.Get("category"), q.Get("subcategory"))
}

func (s *Server) handleDocsPath(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, urlParam(r, "tab"), urlParam(r, "category"), urlParam(r, "*"))
}

func (s *Server) servePage(w http.ResponseWriter, tab, category, subcategory string) {
	view := "item"
	switch {
	case tab == "":
		view = "landing"
	case category == "":
		view = "tab"
	}

	start := time.Now()
	var buf bytes.Buffer
	found, err := s.renderer.Render(&buf, tab, category, subcategory)
	s.metrics.RenderDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("rendering page", "tab", tab, "category", category, "subcategory", subcategory, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !found {
		s.metrics.LookupMisses.Inc()
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tab, category, subcategory := q.Get("tab"), q.Get("category"), q.Get("subcategory")

	it, ok := s.renderer.Project().Select(tab, category, subcategory)
	if !ok {
		s.metrics.LookupMisses.Inc()
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, rpc.NewItemResponse(it, tab, category, subcategory, markdown.Document(it, category)))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		writeError(w, http.StatusServiceUnavailable, "search index not available")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	s.metrics.Searches.Inc()
	results, err := s.index.Search(r.Context(), query, limit)
	if err != nil {
		s.logger.Error("searching index", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, rpc.NewSearchResponse(query, results))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := rpc.StatusResponse{
		Status: "ok",
		Title:  s.renderer.Title(),
		Tabs:   len(s.renderer.Project()),
	}
	if s.index != nil {
		n, err := s.index.Count(r.Context())
		if err != nil {
			s.logger.Error("counting indexed items", "error", err)
			writeError(w, http.StatusServiceUnavailable, "index unavailable")
			return
		}
		resp.Items = n
	}
	writeJSON(w, http.StatusOK, resp)
}

// urlParam returns a decoded route parameter. chi matches on the raw path
// when the request carries escaped separators.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, rpc.ErrorResponse{Error: msg})
}
