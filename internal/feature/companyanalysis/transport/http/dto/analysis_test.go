package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
)

func TestFromAnalysis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *entity.Analysis
		want AnalysisResponse
	}{
		{
			name: "full result",
			in: &entity.Analysis{
				Result: entity.AnalysisResult{
					CompanyName:      "Khan Academy",
					PrimarySectors:   []string{"K-12"},
					SecondarySectors: []string{"Higher Education"},
					Reasoning:        "Free courses for students",
					Confidence:       entity.ConfidenceHigh,
				},
				AssignedTo: entity.MemberMitch,
			},
			want: AnalysisResponse{
				CompanyName:      "Khan Academy",
				PrimarySectors:   []string{"K-12"},
				SecondarySectors: []string{"Higher Education"},
				Reasoning:        "Free courses for students",
				Confidence:       "High",
				AssignedTo:       "Mitch",
			},
		},
		{
			name: "empty reasoning and nil sectors",
			in: &entity.Analysis{
				Result:     entity.AnalysisResult{CompanyName: "Acme", Confidence: entity.ConfidenceMedium},
				AssignedTo: entity.MemberUnassigned,
				Recovered:  true,
			},
			want: AnalysisResponse{
				CompanyName:      "Acme",
				PrimarySectors:   []string{},
				SecondarySectors: []string{},
				Reasoning:        NoReasoning,
				Confidence:       "Medium",
				AssignedTo:       "To be assigned",
				Recovered:        true,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FromAnalysis(tt.in))
		})
	}
}

func TestFromHistory(t *testing.T) {
	t.Parallel()

	got := FromHistory([]entity.HistoryEntry{
		{CompanyName: "B", Sectors: []string{"Workforce Learning"}, AssignedTo: "Sam", Confidence: "Low"},
		{CompanyName: "A", AssignedTo: "To be assigned", Confidence: "Medium"},
	})

	assert.Len(t, got.Entries, 2)
	assert.Equal(t, "B", got.Entries[0].CompanyName)
	assert.Equal(t, []string{}, got.Entries[1].Sectors)

	assert.Equal(t, []HistoryEntryResponse{}, FromHistory(nil).Entries)
}

func TestNewModelsResponse(t *testing.T) {
	t.Parallel()

	got := NewModelsResponse()
	assert.Len(t, got.Models, 5)
	assert.Equal(t, "openai/gpt-4o", got.Default)
	assert.Equal(t, got.Default, got.Models[0])
}

func TestAnalyzeRequest_ToEntity(t *testing.T) {
	t.Parallel()

	got := AnalyzeRequest{CompanyName: "Coursera", CompanyDescription: "MOOCs", Model: "google/gemma-2-9b-it:free"}.ToEntity()
	assert.Equal(t, entity.AnalysisRequest{
		CompanyName:        "Coursera",
		CompanyDescription: "MOOCs",
		Model:              "google/gemma-2-9b-it:free",
	}, got)
}
