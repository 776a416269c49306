package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Simplici0/remont/internal/calc"
	"github.com/Simplici0/remont/internal/export"
	"github.com/Simplici0/remont/internal/metrics"
)

const (
	sqliteTimeLayout = "2006-01-02 15:04:05"
	maxTitleRunes    = 200
	listLimit        = 100
)

var errCalculationNotFound = errors.New("calculation not found")

type calculatorFunc func(s *server, r *http.Request) (input, result any, err error)

var calculators = map[string]calculatorFunc{
	"paint": func(s *server, r *http.Request) (any, any, error) {
		spec := parsePaintForm(r)
		res, err := s.calc.Paint(spec)
		return spec, res, err
	},
	"tile": func(s *server, r *http.Request) (any, any, error) {
		spec := parseTileForm(r)
		res, err := s.calc.Tile(spec)
		return spec, res, err
	},
	"wallpaper": func(s *server, r *http.Request) (any, any, error) {
		spec := parseWallpaperForm(r)
		res, err := s.calc.Wallpaper(spec)
		return spec, res, err
	},
	"lighting": func(s *server, r *http.Request) (any, any, error) {
		spec := parseLightingForm(r)
		res, err := s.calc.Lighting(spec)
		return spec, res, err
	},
	"underfloor": func(s *server, r *http.Request) (any, any, error) {
		spec := parseUnderfloorForm(r, s.cfg.TariffPerKwh)
		res, err := s.calc.Underfloor(spec)
		return spec, res, err
	},
	"budget": func(s *server, r *http.Request) (any, any, error) {
		spec := parseBudgetForm(r)
		res, err := s.calc.Budget(spec)
		return spec, res, err
	},
}

// resultDecoders turn a stored result_json back into the calculator's result type.
var resultDecoders = map[string]func([]byte) (any, error){
	"paint":      decodeAs[calc.PaintResult],
	"tile":       decodeAs[calc.TileResult],
	"wallpaper":  decodeAs[calc.WallpaperResult],
	"lighting":   decodeAs[calc.LightingResult],
	"underfloor": decodeAs[calc.UnderfloorResult],
	"budget":     decodeAs[calc.BudgetResult],
}

// headlineKeys name the result field shown in listings.
var headlineKeys = map[string]string{
	"paint":      "liters_rounded",
	"tile":       "packs",
	"wallpaper":  "rolls",
	"lighting":   "lamps",
	"underfloor": "total_power_w",
	"budget":     "total",
}

func decodeAs[T any](raw []byte) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type calculationResponse struct {
	Kind     string `json:"kind"`
	Result   any    `json:"result"`
	ID       string `json:"id,omitempty"`
	ShareURL string `json:"share_url,omitempty"`
}

type calculationListItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Headline  float64   `json:"headline"`
}

type savedCalculation struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	Lang      string          `json:"lang"`
	CreatedAt time.Time       `json:"created_at"`
	ShareURL  string          `json:"share_url"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
}

// handleReference exposes the tables the calculators run with, so clients can
// offer the valid layouts, room types and floor coverings.
func (s *server) handleReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.calc.Tables())
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	run, ok := calculators[kind]
	if !ok {
		s.writeError(w, r, http.StatusNotFound, "error_unknown_calculator")
		return
	}

	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_bad_request")
		return
	}

	input, result, err := run(s, r)
	if err != nil {
		if errors.Is(err, calc.ErrInvalidInput) {
			s.metrics.ObserveCalculation(kind, metrics.OutcomeRejected)
			slog.Debug("calculation rejected", "calculator", kind, "error", err)
			lang := s.requestLang(r)
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{
				Error:   http.StatusText(http.StatusUnprocessableEntity),
				Message: s.tr.T(lang, "error_invalid_input", nil),
				Detail:  err.Error(),
			})
			return
		}
		s.metrics.ObserveCalculation(kind, metrics.OutcomeError)
		slog.Error("calculation failed", "calculator", kind, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	s.metrics.ObserveCalculation(kind, metrics.OutcomeOK)

	resp := calculationResponse{Kind: kind, Result: result}
	if formBool(r, "save") {
		id, err := s.saveCalculation(r.Context(), kind, formString(r, "title"), s.requestLang(r), input, result)
		if err != nil {
			slog.Error("failed to save calculation", "calculator", kind, "error", err)
			s.writeError(w, r, http.StatusInternalServerError, "error_internal")
			return
		}
		s.metrics.ObserveSaved(kind)
		resp.ID = id
		resp.ShareURL = s.shareURL(id)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *server) saveCalculation(ctx context.Context, kind, title, lang string, input, result any) (string, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, kind, title, lang, input_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, kind, truncateRunes(title, maxTitleRunes), lang, string(inputJSON), string(resultJSON),
		time.Now().UTC().Format(sqliteTimeLayout))
	if err != nil {
		return "", fmt.Errorf("insert calculation: %w", err)
	}
	return id, nil
}

func (s *server) handleCalculationsList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	kind := strings.TrimSpace(r.URL.Query().Get("kind"))

	items, err := s.listCalculations(r.Context(), query, kind)
	if err != nil {
		slog.Error("failed to list calculations", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *server) listCalculations(ctx context.Context, query, kind string) ([]calculationListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, COALESCE(title, ''), created_at, result_json
		FROM calculations
		WHERE (? = '' OR COALESCE(title, '') LIKE ?)
		  AND (? = '' OR kind = ?)
		ORDER BY datetime(created_at) DESC, rowid DESC
		LIMIT ?
	`, query, search, kind, kind, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]calculationListItem, 0)
	for rows.Next() {
		var item calculationListItem
		var createdAt, resultJSON string
		if err := rows.Scan(&item.ID, &item.Kind, &item.Title, &createdAt, &resultJSON); err != nil {
			return nil, err
		}
		item.CreatedAt = parseStoredTime(createdAt)
		item.Headline = extractHeadline(item.Kind, resultJSON)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func extractHeadline(kind, resultJSON string) float64 {
	key, ok := headlineKeys[kind]
	if !ok {
		return 0
	}
	var values map[string]any
	if err := json.Unmarshal([]byte(resultJSON), &values); err != nil {
		return 0
	}
	v, _ := values[key].(float64)
	return v
}

func (s *server) getCalculation(ctx context.Context, id string) (savedCalculation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return savedCalculation{}, errCalculationNotFound
	}

	var c savedCalculation
	var createdAt, inputJSON, resultJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, COALESCE(title, ''), lang, created_at, input_json, result_json
		FROM calculations
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Kind, &c.Title, &c.Lang, &createdAt, &inputJSON, &resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return savedCalculation{}, errCalculationNotFound
	}
	if err != nil {
		return savedCalculation{}, err
	}

	c.CreatedAt = parseStoredTime(createdAt)
	c.ShareURL = s.shareURL(c.ID)
	c.Input = json.RawMessage(inputJSON)
	c.Result = json.RawMessage(resultJSON)
	return c, nil
}

// loadCalculation fetches the {id} calculation and writes the error response
// itself when it cannot.
func (s *server) loadCalculation(w http.ResponseWriter, r *http.Request) (savedCalculation, bool) {
	c, err := s.getCalculation(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, errCalculationNotFound) {
		s.writeError(w, r, http.StatusNotFound, "error_not_found")
		return savedCalculation{}, false
	}
	if err != nil {
		slog.Error("failed to load calculation", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return savedCalculation{}, false
	}
	return c, true
}

func (s *server) handleCalculationDetail(w http.ResponseWriter, r *http.Request) {
	c, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *server) document(c savedCalculation) (export.Document, error) {
	decode, ok := resultDecoders[c.Kind]
	if !ok {
		return export.Document{}, fmt.Errorf("unknown calculation kind %q", c.Kind)
	}
	result, err := decode(c.Result)
	if err != nil {
		return export.Document{}, fmt.Errorf("decode %s result: %w", c.Kind, err)
	}
	return export.Document{
		Kind:      c.Kind,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		ShareURL:  c.ShareURL,
		Rows:      export.Rows(result),
	}, nil
}

// exportLang prefers an explicit ?lang= and falls back to the language the
// calculation was saved in.
func (s *server) exportLang(r *http.Request, c savedCalculation) string {
	return s.tr.Match(r.URL.Query().Get("lang"), c.Lang)
}

func (s *server) handleCalculationText(w http.ResponseWriter, r *http.Request) {
	c, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	doc, err := s.document(c)
	if err != nil {
		slog.Error("failed to build document", "id", c.ID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Text(s.tr, s.exportLang(r, c), doc)))
}

func (s *server) handleCalculationXLSX(w http.ResponseWriter, r *http.Request) {
	c, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	doc, err := s.document(c)
	if err != nil {
		slog.Error("failed to build document", "id", c.ID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}

	var buf bytes.Buffer
	if err := export.XLSX(&buf, s.tr, s.exportLang(r, c), doc); err != nil {
		slog.Error("failed to render xlsx", "id", c.ID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, c.Kind, c.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleCalculationQR(w http.ResponseWriter, r *http.Request) {
	c, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	png, err := export.QR(c.ShareURL)
	if err != nil {
		slog.Error("failed to render qr code", "id", c.ID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *server) shareURL(id string) string {
	return s.cfg.BaseURL + "/c/" + id
}

func parseStoredTime(raw string) time.Time {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
