package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/calc"
	"github.com/cleared-dev/pnl/internal/export"
	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
	"github.com/cleared-dev/pnl/internal/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// errBadRequest marks malformed request input.
var errBadRequest = errors.New("bad request")

func mapError(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, grid.ErrUnknownSection),
		errors.Is(err, grid.ErrUnknownRow):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrInvalidMonth),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrReadOnlyRow),
		errors.Is(err, grid.ErrFixedSection),
		errors.Is(err, grid.ErrVATFlagLocked),
		errors.Is(err, grid.ErrLastRow),
		errors.Is(err, grid.ErrCrossSection):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type seriesView struct {
	Monthly map[string]decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal            `json:"yearly"`
}

func viewSeries(monthly [model.NumMonths]decimal.Decimal, yearly decimal.Decimal) seriesView {
	v := seriesView{Monthly: make(map[string]decimal.Decimal, model.NumMonths), Yearly: yearly}
	for _, m := range model.Months() {
		v.Monthly[m.Key()] = monthly[m]
	}
	return v
}

func viewMetrics(mt calc.Metrics) map[string]seriesView {
	s := func(x calc.Series) seriesView { return viewSeries(x.Monthly, x.Yearly) }
	r := func(x calc.Ratio) seriesView { return viewSeries(x.Monthly, x.Yearly) }
	return map[string]seriesView{
		"revenue":                     s(mt.Revenue),
		"gross_vat":                   s(mt.GrossVAT),
		"vat_refunds":                 s(mt.VATRefunds),
		"vat_net":                     s(mt.VATNet),
		"revenue_after_vat_deduction": s(mt.RevenueAfterVATDeduction),
		"revenue_after_vat_refunds":   s(mt.RevenueAfterVATRefunds),
		"cogs":                        s(mt.COGS),
		"cogs_excluding_vat":          s(mt.COGSExcludingVAT),
		"gross_profit":                s(mt.GrossProfit),
		"opex":                        s(mt.OPEX),
		"ebitda":                      s(mt.EBITDA),
		"net_profit":                  s(mt.NetProfit),
		"gross_margin_percent":        r(mt.GrossMarginPercent),
		"cogs_percent":                r(mt.COGSPercent),
		"net_margin_percent":          r(mt.NetMarginPercent),
		"opex_percent":                r(mt.OPEXPercent),
	}
}

// actionsView is the enabled state of a row's edits; false renders disabled.
type actionsView struct {
	Editable    bool `json:"editable"`
	VATToggle   bool `json:"vat_toggle"`
	Removable   bool `json:"removable"`
	Reorderable bool `json:"reorderable"`
}

type lineView struct {
	Label     string            `json:"label"`
	Kind      export.Kind       `json:"kind"`
	Section   model.SectionID   `json:"section"`
	RowID     string            `json:"row_id,omitempty"`
	Values    seriesView        `json:"values"`
	Display   map[string]string `json:"display"`
	Actions   *actionsView      `json:"actions,omitempty"`     // row lines
	CanAddRow *bool             `json:"can_add_row,omitempty"` // section total lines
}

func viewLine(ln export.Line, sess *session.Session) lineView {
	display := make(map[string]string, model.NumMonths+1)
	for _, m := range model.Months() {
		display[m.Key()] = ln.Display(m)
	}
	display["yearly"] = ln.DisplayYearly()
	v := lineView{
		Label:   ln.Label,
		Kind:    ln.Kind,
		Section: ln.Section,
		RowID:   ln.RowID,
		Values:  viewSeries(ln.Monthly, ln.Yearly),
		Display: display,
	}
	switch ln.Kind {
	case export.KindRow:
		a := sess.RowActions(ln.Section, ln.RowID)
		v.Actions = &actionsView{
			Editable:    a.Editable,
			VATToggle:   a.VATToggle,
			Removable:   a.Removable,
			Reorderable: a.Reorderable,
		}
	case export.KindTotal:
		can := sess.CanAddRow(ln.Section)
		v.CanAddRow = &can
	}
	return v
}
