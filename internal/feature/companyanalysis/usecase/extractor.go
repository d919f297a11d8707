package usecase

import (
	"encoding/json"
	"strings"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
)

// rawResult はモデル出力のJSONを受けるための中間構造体です。
type rawResult struct {
	CompanyName      string   `json:"company_name"`
	PrimarySectors   []string `json:"primary_sectors"`
	SecondarySectors []string `json:"secondary_sectors"`
	Reasoning        string   `json:"reasoning"`
	Confidence       string   `json:"confidence"`
}

// ExtractResult はモデルの生テキストから分析結果を取り出します。
//
// 最初の "{" から最後の "}" までを切り出してJSONとして読みます。
// 後続の文章に "}" が含まれると余分に切り出してしまいますが、その場合はフォールバックになります。
// 切り出しや解析に失敗した場合はエラーを返さず、信頼度Lowのフォールバック結果を返します。
// 2つ目の戻り値はフォールバックを使ったかどうかです。
func ExtractResult(raw, companyName string) (entity.AnalysisResult, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return fallbackResult(raw, companyName), true
	}

	var r rawResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &r); err != nil {
		return fallbackResult(raw, companyName), true
	}

	out := entity.AnalysisResult{
		CompanyName:      r.CompanyName,
		PrimarySectors:   r.PrimarySectors,
		SecondarySectors: r.SecondarySectors,
		Reasoning:        r.Reasoning,
		Confidence:       entity.Confidence(r.Confidence),
	}
	if strings.TrimSpace(out.CompanyName) == "" {
		out.CompanyName = companyName
	}
	if out.PrimarySectors == nil {
		out.PrimarySectors = []string{}
	}
	if out.SecondarySectors == nil {
		out.SecondarySectors = []string{}
	}
	if out.Confidence == "" {
		out.Confidence = entity.ConfidenceMedium
	}
	return out, false
}

func fallbackResult(raw, companyName string) entity.AnalysisResult {
	return entity.AnalysisResult{
		CompanyName:      companyName,
		PrimarySectors:   []string{entity.SectorOther},
		SecondarySectors: []string{},
		Reasoning:        raw,
		Confidence:       entity.ConfidenceLow,
	}
}
