package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"company_analyzer/internal/feature/companyanalysis/usecase"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("fills name and description", func(t *testing.T) {
		t.Parallel()

		p := usecase.BuildPrompt("Khan Academy", "free online courses")

		assert.Contains(t, p, "Company: Khan Academy\nDescription: free online courses\n")
		assert.Contains(t, p, `"confidence": "High/Medium/Low"`)
		assert.Contains(t, p, "- Other: EdTech tools, platforms, or services that don't fit above categories")
		assert.True(t, strings.HasPrefix(p, "\nYou are an expert at analyzing companies in the education sector."))
	})

	t.Run("empty description uses default", func(t *testing.T) {
		t.Parallel()

		p := usecase.BuildPrompt("Acme", "  ")

		assert.Contains(t, p, "Description: No description provided\n")
	})

	t.Run("percent signs are kept verbatim", func(t *testing.T) {
		t.Parallel()

		p := usecase.BuildPrompt("100% Learning", "")

		assert.Contains(t, p, "Company: 100% Learning\n")
	})
}
