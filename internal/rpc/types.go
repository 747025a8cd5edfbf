package rpc

import (
	"github.com/jcdickinson/apidocs/internal/docs"
	"github.com/jcdickinson/apidocs/internal/index"
)

// ItemResponse is the response body for GET /api/item.
type ItemResponse struct {
	Path      string     `json:"path"`
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	Method    bool       `json:"method"`
	Signature string     `json:"signature"`
	Markdown  string     `json:"markdown"`
	Item      *docs.Item `json:"item"`
}

// NewItemResponse describes the item reached through the given keys.
func NewItemResponse(it *docs.Item, tab, category, subcategory, markdown string) ItemResponse {
	e := docs.Entry{Tab: tab, Category: category, Subcategory: subcategory, Item: it}
	return ItemResponse{
		Path:      e.Path(),
		URL:       docs.DocURL(tab, category, subcategory),
		Title:     it.Title(category),
		Method:    it.IsMethod(),
		Signature: docs.FuncSignature(it, category),
		Markdown:  markdown,
		Item:      it,
	}
}

// SearchResponse is the response body for GET /api/search.
type SearchResponse struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
}

type SearchHit struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Method      bool   `json:"method"`
	Realm       string `json:"realm,omitempty"`
	Signature   string `json:"signature"`
	Summary     string `json:"summary,omitempty"`
}

// NewSearchResponse converts index results to their wire form.
func NewSearchResponse(query string, results []index.Result) SearchResponse {
	resp := SearchResponse{Query: query, Results: make([]SearchHit, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, SearchHit{
			Path:        r.Path,
			URL:         docs.DocURL(r.Tab, r.Category, r.Subcategory),
			Name:        r.Name,
			DisplayName: r.DisplayName,
			Method:      r.IsMethod,
			Realm:       r.Realm,
			Signature:   r.Signature,
			Summary:     r.Summary,
		})
	}
	return resp
}

// StatusResponse is the response body for GET /healthz.
type StatusResponse struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Tabs   int    `json:"tabs"`
	Items  int    `json:"items"`
}

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error string `json:"error"`
}
