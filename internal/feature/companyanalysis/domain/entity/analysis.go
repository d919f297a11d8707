// Package entity はcompanyanalysisフィーチャーのドメインモデルを定義します。
package entity

// Confidence はモデルが自己申告する確信度ラベルです。
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// DefaultDescription は説明が空のときにプロンプトへ埋め込む文言です。
const DefaultDescription = "No description provided"

// AnalysisRequest は1回の企業分析の入力を表します。
type AnalysisRequest struct {
	CompanyName        string  // 企業名（必須）
	CompanyDescription string  // 企業の説明（任意）
	Model              ModelID // 使用するモデル
}

// AnalysisResult はモデル出力から抽出した分析結果を表します。
type AnalysisResult struct {
	CompanyName      string     `json:"company_name"`
	PrimarySectors   []string   `json:"primary_sectors"`
	SecondarySectors []string   `json:"secondary_sectors"`
	Reasoning        string     `json:"reasoning"`
	Confidence       Confidence `json:"confidence"`
}

// Sectors は主要セクターと副次セクターを連結したものを返します。
func (r AnalysisResult) Sectors() []string {
	out := make([]string, 0, len(r.PrimarySectors)+len(r.SecondarySectors))
	out = append(out, r.PrimarySectors...)
	return append(out, r.SecondarySectors...)
}

// Analysis は分析結果とチーム割り当てをまとめたものです。
type Analysis struct {
	Result     AnalysisResult
	AssignedTo string
	// Recovered はモデル出力がJSONとして読めず、フォールバック結果を使ったことを示します。
	Recovered bool
}
