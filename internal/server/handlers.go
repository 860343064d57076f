package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/editlog"
	"github.com/cleared-dev/pnl/internal/export"
	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
	"github.com/cleared-dev/pnl/internal/session"
)

type createSessionResponse struct {
	ID string `json:"id"`
}

type totalsResponse struct {
	Section model.SectionID `json:"section"`
	seriesView
}

type rowTotalResponse struct {
	RowID string          `json:"row_id"`
	Total decimal.Decimal `json:"total"`
}

type cellValueRequest struct {
	Value string `json:"value"`
}

type cellVATRequest struct {
	Included bool `json:"included"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type moveRequest struct {
	Before string `json:"before"`
}

type addRowResponse struct {
	ID string `json:"id"`
}

type historyEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Section   string    `json:"section"`
	RowID     string    `json:"row_id,omitempty"`
	Month     string    `json:"month,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// createSession starts a session over the posted ledger, or over the
// default ledger when the body is empty.
func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l := grid.NewLedger()
	if len(bytes.TrimSpace(body)) > 0 {
		l, err = model.ReadLedger(bytes.NewReader(body))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	id := s.store.Create(l)
	writeJSON(w, http.StatusCreated, createSessionResponse{ID: id})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.With(id, func(*session.Session) error { return nil }); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// withSession runs fn against the session named in the URL and writes any
// error it returns.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	err := s.store.With(chi.URLParam(r, "id"), fn)
	if err != nil {
		writeError(w, mapError(err), err.Error())
	}
}

func (s *Server) getLedger(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) error {
		writeJSON(w, http.StatusOK, sess.Ledger())
		return nil
	})
}

func (s *Server) getMetrics(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) error {
		writeJSON(w, http.StatusOK, viewMetrics(sess.Metrics()))
		return nil
	})
}

func (s *Server) getSectionTotals(w http.ResponseWriter, r *http.Request) {
	sid := model.SectionID(chi.URLParam(r, "section"))
	s.withSession(w, r, func(sess *session.Session) error {
		t, ok := sess.SectionTotals(sid)
		if !ok {
			return fmt.Errorf("%w: %s", grid.ErrUnknownSection, sid)
		}
		writeJSON(w, http.StatusOK, totalsResponse{Section: sid, seriesView: viewSeries(t.Monthly, t.Yearly)})
		return nil
	})
}

func (s *Server) getRowTotal(w http.ResponseWriter, r *http.Request) {
	rowID := chi.URLParam(r, "row")
	s.withSession(w, r, func(sess *session.Session) error {
		total, ok := sess.RowTotal(rowID)
		if !ok {
			return fmt.Errorf("%w: %s", grid.ErrUnknownRow, rowID)
		}
		writeJSON(w, http.StatusOK, rowTotalResponse{RowID: rowID, Total: total})
		return nil
	})
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) error {
		entries := sess.History()
		out := make([]historyEntry, len(entries))
		for i, e := range entries {
			out[i] = historyEntry{
				Timestamp: e.Timestamp,
				Action:    e.Action,
				Section:   e.Section,
				RowID:     e.RowID,
				Month:     e.Month,
				Details:   e.Details,
			}
		}
		writeJSON(w, http.StatusOK, out)
		return nil
	})
}

// getHistoryCSV writes the history in the edit-log.csv layout. The action
// query parameter narrows it to one kind of edit.
func (s *Server) getHistoryCSV(w http.ResponseWriter, r *http.Request) {
	f := editlog.Filter{Action: r.URL.Query().Get("action"), Section: r.URL.Query().Get("section")}
	s.withSession(w, r, func(sess *session.Session) error {
		var buf bytes.Buffer
		if err := editlog.WriteEntries(&buf, editlog.Select(sess.History(), f)); err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="edit-log.csv"`)
		w.Write(buf.Bytes())
		return nil
	})
}

// cellTarget pulls section, row and month from the URL.
func cellTarget(r *http.Request) (model.SectionID, string, model.Month, error) {
	m, err := model.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %v", grid.ErrInvalidMonth, err)
	}
	return model.SectionID(chi.URLParam(r, "section")), chi.URLParam(r, "row"), m, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// updateCellValue takes the value as text so "11,800" and "" behave as typed.
func (s *Server) updateCellValue(w http.ResponseWriter, r *http.Request) {
	sid, rowID, m, err := cellTarget(r)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	var req cellValueRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.withSession(w, r, func(sess *session.Session) error {
		if err := sess.SetCellText(sid, rowID, m, req.Value); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, viewMetrics(sess.Metrics()))
		return nil
	})
}

func (s *Server) updateCellVAT(w http.ResponseWriter, r *http.Request) {
	sid, rowID, m, err := cellTarget(r)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	var req cellVATRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.withSession(w, r, func(sess *session.Session) error {
		if err := sess.UpdateCellVATFlag(sid, rowID, m, req.Included); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, viewMetrics(sess.Metrics()))
		return nil
	})
}

func (s *Server) addRow(w http.ResponseWriter, r *http.Request) {
	sid := model.SectionID(chi.URLParam(r, "section"))
	s.withSession(w, r, func(sess *session.Session) error {
		rowID, err := sess.AddRow(sid)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusCreated, addRowResponse{ID: rowID})
		return nil
	})
}

func (s *Server) renameRow(w http.ResponseWriter, r *http.Request) {
	sid := model.SectionID(chi.URLParam(r, "section"))
	rowID := chi.URLParam(r, "row")
	var req renameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.withSession(w, r, func(sess *session.Session) error {
		if err := sess.RenameRow(sid, rowID, req.Name); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) removeRow(w http.ResponseWriter, r *http.Request) {
	sid := model.SectionID(chi.URLParam(r, "section"))
	rowID := chi.URLParam(r, "row")
	s.withSession(w, r, func(sess *session.Session) error {
		if err := sess.RemoveRow(sid, rowID); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) reorderRow(w http.ResponseWriter, r *http.Request) {
	sid := model.SectionID(chi.URLParam(r, "section"))
	rowID := chi.URLParam(r, "row")
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	s.withSession(w, r, func(sess *session.Session) error {
		if err := sess.ReorderRow(sid, rowID, req.Before); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) exportJSON(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) error {
		lines := sess.Serialize()
		out := make([]lineView, len(lines))
		for i, ln := range lines {
			out[i] = viewLine(ln, sess)
		}
		writeJSON(w, http.StatusOK, out)
		return nil
	})
}

// exportCSV writes display-formatted values unless ?raw=true.
func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	raw, _ := strconv.ParseBool(r.URL.Query().Get("raw"))
	s.withSession(w, r, func(sess *session.Session) error {
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, sess.Serialize(), raw); err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="pnl.csv"`)
		w.Write(buf.Bytes())
		return nil
	})
}

func (s *Server) exportXLSX(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) error {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, sess.Serialize(), s.sheetName); err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="pnl.xlsx"`)
		w.Write(buf.Bytes())
		return nil
	})
}
