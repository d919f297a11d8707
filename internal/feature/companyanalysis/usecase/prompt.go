package usecase

import (
	"fmt"
	"strings"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
)

// SystemInstruction は補完APIに送るシステムメッセージです。
const SystemInstruction = "You are an expert education sector analyst. Always respond with valid JSON."

// AnalysisPromptTemplate は企業分析のプロンプトテンプレートです。企業名・説明の順に埋め込みます。
const AnalysisPromptTemplate = `
You are an expert at analyzing companies in the education sector. 

Please analyze the following company and categorize it based on which sector of education their products and services serve:

Company: %s
Description: %s

Please provide your analysis in the following JSON format:
{
    "company_name": "Company Name",
    "primary_sectors": ["list of primary education sectors"],
    "secondary_sectors": ["list of secondary education sectors"],
    "reasoning": "Brief explanation of your analysis",
    "confidence": "High/Medium/Low"
}

Education sector categories:
- K-12: Elementary, middle, and high school education
- Higher Education: Universities, colleges, community colleges
- Workforce Learning: Professional training, skill development, corporate training
- Corporate Development: Leadership development, executive education
- Other: EdTech tools, platforms, or services that don't fit above categories

Be specific and provide clear reasoning for your categorization.
`

// BuildPrompt はテンプレートに企業名と説明を埋め込みます。説明が空ならDefaultDescriptionを使います。
func BuildPrompt(companyName, description string) string {
	if strings.TrimSpace(description) == "" {
		description = entity.DefaultDescription
	}
	return fmt.Sprintf(AnalysisPromptTemplate, companyName, description)
}
