// Package dto defines data transfer objects for the companyanalysis HTTP API and page.
package dto

import "company_analyzer/internal/feature/companyanalysis/domain/entity"

// NoReasoning is shown when the model returned no reasoning.
const NoReasoning = "No reasoning provided"

// AnalyzeRequest is the body of POST /v1/analyses and the form of POST /analyze.
type AnalyzeRequest struct {
	CompanyName        string `json:"company_name" form:"company_name"`
	CompanyDescription string `json:"company_description" form:"company_description"`
	Model              string `json:"model" form:"model"`
}

// ToEntity converts the request into the domain input.
func (r AnalyzeRequest) ToEntity() entity.AnalysisRequest {
	return entity.AnalysisRequest{
		CompanyName:        r.CompanyName,
		CompanyDescription: r.CompanyDescription,
		Model:              entity.ModelID(r.Model),
	}
}

// AnalysisResponse is one completed analysis.
type AnalysisResponse struct {
	CompanyName      string   `json:"company_name"`
	PrimarySectors   []string `json:"primary_sectors"`
	SecondarySectors []string `json:"secondary_sectors"`
	Reasoning        string   `json:"reasoning"`
	Confidence       string   `json:"confidence"`
	AssignedTo       string   `json:"assigned_to"`
	// Recovered is true when the model output could not be parsed and a fallback was used.
	Recovered bool `json:"recovered"`
}

// FromAnalysis converts a domain analysis into its response form.
func FromAnalysis(a *entity.Analysis) AnalysisResponse {
	reasoning := a.Result.Reasoning
	if reasoning == "" {
		reasoning = NoReasoning
	}
	return AnalysisResponse{
		CompanyName:      a.Result.CompanyName,
		PrimarySectors:   nonNil(a.Result.PrimarySectors),
		SecondarySectors: nonNil(a.Result.SecondarySectors),
		Reasoning:        reasoning,
		Confidence:       string(a.Result.Confidence),
		AssignedTo:       a.AssignedTo,
		Recovered:        a.Recovered,
	}
}

// HistoryEntryResponse is one history row.
type HistoryEntryResponse struct {
	CompanyName string   `json:"company_name"`
	Sectors     []string `json:"sectors"`
	AssignedTo  string   `json:"assigned_to"`
	Confidence  string   `json:"confidence"`
}

// HistoryResponse lists recent analyses, most recent first.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// FromHistory converts history entries into their response form, keeping order.
func FromHistory(entries []entity.HistoryEntry) HistoryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			CompanyName: e.CompanyName,
			Sectors:     nonNil(e.Sectors),
			AssignedTo:  e.AssignedTo,
			Confidence:  e.Confidence,
		})
	}
	return HistoryResponse{Entries: out}
}

// ModelsResponse lists selectable models.
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// NewModelsResponse builds the response from the model catalogue.
func NewModelsResponse() ModelsResponse {
	models := make([]string, 0, len(entity.Models))
	for _, m := range entity.Models {
		models = append(models, string(m))
	}
	return ModelsResponse{Models: models, Default: string(entity.DefaultModel)}
}

// AssignmentRulesResponse is the static assignment table.
type AssignmentRulesResponse struct {
	Rules []entity.AssignmentRule `json:"rules"`
}

// ErrorResponse is returned for every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
