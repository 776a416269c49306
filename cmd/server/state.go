package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Simplici0/remont/internal/formstate"
)

const (
	clientCookieName  = "remont_client"
	clientCookieTTL   = 365 * 24 * time.Hour
	checklistStateKey = "checklist"
	maxStateBodyBytes = 32 << 10
)

type checklistState struct {
	Checked map[string]bool `json:"checked"`
}

type checklistItem struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
}

// clientID returns the anonymous client id, issuing a new cookie when the
// request has none or a malformed one.
func clientID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(clientCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *server) stateKey(w http.ResponseWriter, r *http.Request) (formstate.Key, bool) {
	calculator := chi.URLParam(r, "calculator")
	if _, ok := calculators[calculator]; !ok && calculator != checklistStateKey {
		s.writeError(w, r, http.StatusNotFound, "error_unknown_calculator")
		return formstate.Key{}, false
	}
	return formstate.Key{ClientID: clientID(w, r), Calculator: calculator}, true
}

func (s *server) handleStateGet(w http.ResponseWriter, r *http.Request) {
	key, ok := s.stateKey(w, r)
	if !ok {
		return
	}

	payload, err := s.state.Get(r.Context(), key)
	if errors.Is(err, formstate.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to read form state", "calculator", key.Calculator, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *server) handleStatePut(w http.ResponseWriter, r *http.Request) {
	key, ok := s.stateKey(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStateBodyBytes))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_bad_request")
		return
	}

	if err := s.state.Put(r.Context(), key, body); err != nil {
		if errors.Is(err, formstate.ErrInvalidPayload) || errors.Is(err, formstate.ErrInvalidKey) {
			s.writeError(w, r, http.StatusBadRequest, "error_bad_request")
			return
		}
		slog.Error("failed to write form state", "calculator", key.Calculator, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleStateDelete(w http.ResponseWriter, r *http.Request) {
	key, ok := s.stateKey(w, r)
	if !ok {
		return
	}
	if err := s.state.Delete(r.Context(), key); err != nil {
		slog.Error("failed to delete form state", "calculator", key.Calculator, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleChecklist(w http.ResponseWriter, r *http.Request) {
	key := formstate.Key{ClientID: clientID(w, r), Calculator: checklistStateKey}
	state, err := s.loadChecklistState(r.Context(), key)
	if err != nil {
		slog.Error("failed to read checklist state", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}

	items, err := s.listChecklist(r.Context(), s.requestLang(r))
	if err != nil {
		slog.Error("failed to list checklist", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	for i := range items {
		items[i].Checked = state.Checked[items[i].Slug]
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *server) handleChecklistToggle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_bad_request")
		return
	}

	exists, err := s.checklistItemExists(r.Context(), slug)
	if err != nil {
		slog.Error("failed to look up checklist item", "slug", slug, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	if !exists {
		s.writeError(w, r, http.StatusNotFound, "error_not_found")
		return
	}

	key := formstate.Key{ClientID: clientID(w, r), Calculator: checklistStateKey}
	checked := formBool(r, "checked")
	err = s.state.Update(r.Context(), key, func(current json.RawMessage) (json.RawMessage, error) {
		state := decodeChecklistState(current)
		if checked {
			state.Checked[slug] = true
		} else {
			delete(state.Checked, slug)
		}
		return json.Marshal(state)
	})
	if err != nil {
		slog.Error("failed to save checklist state", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) loadChecklistState(ctx context.Context, key formstate.Key) (checklistState, error) {
	payload, err := s.state.Get(ctx, key)
	if err != nil && !errors.Is(err, formstate.ErrNotFound) {
		return checklistState{}, err
	}
	return decodeChecklistState(payload), nil
}

// decodeChecklistState never fails: a missing or unreadable payload is an
// empty checklist.
func decodeChecklistState(payload json.RawMessage) checklistState {
	var state checklistState
	if payload != nil {
		_ = json.Unmarshal(payload, &state)
	}
	if state.Checked == nil {
		state.Checked = map[string]bool{}
	}
	return state
}

func (s *server) listChecklist(ctx context.Context, lang string) ([]checklistItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, title_ru, title_en
		FROM checklist_items
		ORDER BY position, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]checklistItem, 0)
	for rows.Next() {
		var item checklistItem
		var titleRU, titleEN string
		if err := rows.Scan(&item.Slug, &titleRU, &titleEN); err != nil {
			return nil, err
		}
		item.Title = titleRU
		if lang == "en" {
			item.Title = titleEN
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *server) checklistItemExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM checklist_items WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
