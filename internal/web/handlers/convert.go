package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kobune/eightatena/internal/company"
	"github.com/kobune/eightatena/internal/convert"
	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/metrics"
)

// 20 MB is far beyond any real Eight export.
const maxUploadBytes = 20 << 20

// ConvertHandler serves the conversion API. Each request converts against
// the dictionary snapshot current at that moment, so an admin reload takes
// effect on the next request without restarting.
type ConvertHandler struct {
	store *dict.Store
	tr    kana.Transliterator
	opts  company.Options
	log   *slog.Logger
}

func NewConvertHandler(store *dict.Store, tr kana.Transliterator, opts company.Options, log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{store: store, tr: tr, opts: opts, log: log}
}

// Convert accepts an Eight CSV/TSV either as a multipart "file" field or
// as the raw request body, and responds with the Atena CSV as a download.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	src, name, err := requestFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv := convert.New(h.store.Tables(), h.tr, h.opts)

	var out bytes.Buffer
	stats, err := conv.Convert(src, &out)
	if err != nil {
		var schemaErr *convert.SchemaError
		switch {
		case errors.Is(err, convert.ErrEmptyInput), errors.Is(err, convert.ErrNoHeader):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &schemaErr):
			h.log.ErrorContext(r.Context(), "row schema mismatch", "file", name, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		default:
			h.log.WarnContext(r.Context(), "conversion failed", "file", name, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.log.InfoContext(r.Context(), "converted", "file", name, "rows", stats.Rows)

	filename := fmt.Sprintf("atena_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Converted-Rows", fmt.Sprint(stats.Rows))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Bytes())
}

func requestFile(r *http.Request) (*bytes.Reader, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, "", errors.New(`multipart upload needs a "file" field`)
		}
		defer f.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(f); err != nil {
			return nil, "", fmt.Errorf("reading upload: %w", err)
		}
		return bytes.NewReader(buf.Bytes()), hdr.Filename, nil
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return nil, "", fmt.Errorf("reading body: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), "(body)", nil
}

// Versions reports the loaded dictionary versions and the active kana
// engine, so operators can verify a reload picked up new files.
func (h *ConvertHandler) Versions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"dictionaries": h.store.Tables().Versions(),
		"kana_engine":  h.tr.Name(),
	})
}

// Reload re-reads every dictionary file and swaps the snapshot in one
// step. In-flight conversions keep the snapshot they started with.
// Tables that fail to load fall back to built-in defaults, which the
// versions in the response make visible.
func (h *ConvertHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.store.Reload()
	metrics.DictReloadsTotal.Inc()
	h.log.InfoContext(r.Context(), "dictionaries reloaded", "versions", h.store.Tables().Versions())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "reloaded",
		"dictionaries": h.store.Tables().Versions(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
