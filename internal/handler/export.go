// export.go implements GET /export.
// Returns every eatery in the guide as a flat table, ignoring the active filter.
// Supports content negotiation via ?format=json (default), csv or yaml.

package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
	"gopkg.in/yaml.v3"

	"github.com/charleslimjh/tp/internal/domain"
)

// Export formats accepted by ?format=.
const (
	ExportJSON = "json"
	ExportCSV  = "csv"
	ExportYAML = "yaml"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"position", "name", "phone", "cuisine", "location", "tags"}

// GetExport handles GET /export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		requestBody(w, "invalid format for parameter format: "+err.Error())
		return
	}
	f := ExportJSON
	if format != nil {
		f = strings.ToLower(*format)
	}
	if f != ExportJSON && f != ExportCSV && f != ExportYAML {
		requestBody(w, "format must be one of json, csv, yaml")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch f {
	case ExportCSV:
		writeAttachment(w, "text/csv", "foodguide.csv", buildCSV(rows))
	case ExportYAML:
		b, err := yaml.Marshal(rows)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeAttachment(w, "application/yaml", "foodguide.yaml", b)
	default:
		w.Header().Set("Content-Disposition", `attachment; filename="foodguide.json"`)
		writeJSON(w, http.StatusOK, rows)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// buildCSV encodes rows as CSV with a header line.
// Tags within a row are pipe-separated ("|") to keep each eatery on a single CSV line.
func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			strconv.Itoa(r.Position),
			r.Name,
			r.Phone,
			r.Cuisine,
			r.Location,
			strings.Join(r.Tags, "|"),
		})
	}
	cw.Flush()
	return buf.Bytes()
}
