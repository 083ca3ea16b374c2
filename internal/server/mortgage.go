package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iwvelando/mortgage-calculator/internal/estimate"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/pseo"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// mortgageRequest accepts either downPaymentValue or downPaymentPercent.
// The dollar amount wins when both are sent.
type mortgageRequest struct {
	mortgage.Inputs
	DownPaymentPercent *float64 `json:"downPaymentPercent,omitempty"`
}

type mortgageResponse struct {
	Inputs   mortgage.Inputs     `json:"inputs"`
	Results  mortgage.Results    `json:"results"`
	Estimate string              `json:"estimate"`
	Chart    []output.ChartSlice `json:"chart"`
	Cached   bool                `json:"cached"`
}

type paymentPageResponse struct {
	Slug        string           `json:"slug"`
	Parts       pseo.SlugParts   `json:"parts"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Calculation mortgageResponse `json:"calculation"`
}

type ratesPageResponse struct {
	State       pseo.State       `json:"state"`
	Tier        string           `json:"tier"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     pseo.Content     `json:"content"`
	FAQ         []pseo.FAQItem   `json:"faq"`
	Summary     string           `json:"summary"`
	Calculation mortgageResponse `json:"calculation"`
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleMortgage"

	var req mortgageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if bodyTooLarge(err) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode inputs: %v", err), op)
		return
	}

	inputs := req.Inputs
	if inputs.DownPaymentValue == 0 && req.DownPaymentPercent != nil {
		_, inputs.DownPaymentValue = validation.SyncDownPayment(
			inputs.HomePrice, *req.DownPaymentPercent, 0, validation.DownPaymentPercent)
	}

	resp, ok := h.calculate(w, r, inputs, op)
	if !ok {
		return
	}
	if includeSchedule, err := strconv.ParseBool(r.URL.Query().Get("schedule")); err == nil && !includeSchedule {
		resp.Results.Schedule = nil
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handlePaymentPage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePaymentPage"

	slug := r.PathValue("slug")
	parts, err := pseo.ParseSlug(slug)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusNotFound, err.Error(), op)
		return
	}

	resp, ok := h.calculate(w, r, validation.ClampInputs(pseo.SlugInputs(parts)), op)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, paymentPageResponse{
		Slug:        parts.Slug(),
		Parts:       parts,
		Title:       pseo.PageTitle(parts),
		Description: pseo.PageDescription(parts),
		Calculation: resp,
	})
}

func (h *handler) handleRatesPage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRatesPage"

	state, found := pseo.FindState(r.PathValue("state"))
	if !found {
		h.respondErrorWithOp(w, r, http.StatusNotFound, fmt.Sprintf("unknown state %q", r.PathValue("state")), op)
		return
	}
	tier := r.PathValue("tier")
	if !pseo.IsCreditTier(tier) {
		h.respondErrorWithOp(w, r, http.StatusNotFound, fmt.Sprintf("unknown credit tier %q", tier), op)
		return
	}

	resp, ok := h.calculate(w, r, pseo.DefaultInputs(state.Slug, tier), op)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, ratesPageResponse{
		State:       state,
		Tier:        tier,
		Title:       pseo.RatesPageTitle(state, tier),
		Description: pseo.RatesPageDescription(state, tier),
		Content:     pseo.ContentForPage(state.Slug, tier),
		FAQ:         pseo.FAQ(),
		Summary:     output.IllustrativeSentence(resp.Results),
		Calculation: resp,
	})
}

// handleSchedulePDF renders a schedule from query parameters. Missing
// parameters take the calculator defaults and out-of-range values are
// clamped rather than rejected.
func (h *handler) handleSchedulePDF(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedulePDF"

	query := r.URL.Query()
	defaults := pseo.CalculatorDefaults()
	inputs := validation.ClampInputs(mortgage.Inputs{
		HomePrice:                 queryNumber(query, "homePrice", defaults.HomePrice),
		DownPaymentValue:          queryNumber(query, "downPayment", defaults.DownPaymentValue),
		LoanTermYears:             int(queryNumber(query, "loanTerm", float64(defaults.LoanTermYears))),
		AnnualInterestRatePercent: queryNumber(query, "interestRate", defaults.AnnualInterestRatePercent),
		AnnualPropertyTax:         queryNumber(query, "propertyTax", defaults.AnnualPropertyTax),
		AnnualHomeInsurance:       queryNumber(query, "homeInsurance", defaults.AnnualHomeInsurance),
		MonthlyHoaFee:             queryNumber(query, "hoaFees", defaults.MonthlyHoaFee),
	})

	outcome, err := h.calc.Calculate(r.Context(), inputs)
	if err != nil {
		h.respondCalcError(w, r, err, op)
		return
	}

	var buf bytes.Buffer
	result := estimate.Estimate{Name: "Mortgage", Inputs: inputs, Results: outcome.Results, ShowSchedule: true}
	if err := output.PDFFormat(&buf, result); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="amortization-schedule.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write PDF response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request, inputs mortgage.Inputs, op string) (mortgageResponse, bool) {
	outcome, err := h.calc.Calculate(r.Context(), inputs)
	if err != nil {
		h.respondCalcError(w, r, err, op)
		return mortgageResponse{}, false
	}

	h.logger.Debug("mortgage calculated",
		zap.String("op", op),
		zap.String("requestId", RequestIDFromContext(r.Context())),
		zap.Bool("cached", outcome.Cached),
		zap.Float64("monthlyPayment", outcome.Results.TotalMonthlyPayment),
	)

	return mortgageResponse{
		Inputs:   inputs,
		Results:  outcome.Results,
		Estimate: output.EstimateSentence(inputs, outcome.Results),
		Chart:    output.ChartData(outcome.Results),
		Cached:   outcome.Cached,
	}, true
}

// queryNumber reads a user-formatted number ("$1,200") from the query,
// falling back when the parameter is missing or unparseable.
func queryNumber(query url.Values, name string, fallback float64) float64 {
	if !query.Has(name) {
		return fallback
	}
	return validation.ParseFormattedNumber(query.Get(name), fallback)
}
