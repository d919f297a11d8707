package entity

// HistoryEntry はセッション内で1企業につき1件だけ記録される分析履歴です。
type HistoryEntry struct {
	CompanyName string   `json:"company_name"`
	Sectors     []string `json:"sectors"`
	AssignedTo  string   `json:"assigned_to"`
	Confidence  string   `json:"confidence"`
}

// History は1セッション分の追記専用の履歴です。
// 同じ企業名のエントリは2件以上保持しません。並行書き込みには対応しないため、
// セッションごとに独立したインスタンスを持たせてください。
type History struct {
	Entries []HistoryEntry `json:"entries"`
}

// NewHistoryEntry は分析結果から履歴エントリを生成します。
func NewHistoryEntry(a *Analysis) HistoryEntry {
	return HistoryEntry{
		CompanyName: a.Result.CompanyName,
		Sectors:     a.Result.Sectors(),
		AssignedTo:  a.AssignedTo,
		Confidence:  string(a.Result.Confidence),
	}
}

// Contains は同じ企業名のエントリがあるかを線形探索で調べます。
func (h *History) Contains(companyName string) bool {
	for _, e := range h.Entries {
		if e.CompanyName == companyName {
			return true
		}
	}
	return false
}

// Add はエントリを末尾に追加します。同名の企業が既にあれば何もせずfalseを返します。
func (h *History) Add(e HistoryEntry) bool {
	if h.Contains(e.CompanyName) {
		return false
	}
	h.Entries = append(h.Entries, e)
	return true
}

// Recent は直近n件を新しい順で返します。nが0以下なら全件を返します。
func (h *History) Recent(n int) []HistoryEntry {
	start := 0
	if n > 0 && len(h.Entries) > n {
		start = len(h.Entries) - n
	}
	out := make([]HistoryEntry, 0, len(h.Entries)-start)
	for i := len(h.Entries) - 1; i >= start; i-- {
		out = append(out, h.Entries[i])
	}
	return out
}

// Len は保持しているエントリ数を返します。
func (h *History) Len() int {
	return len(h.Entries)
}

// Clone は独立したコピーを返します。
func (h *History) Clone() *History {
	out := &History{Entries: make([]HistoryEntry, len(h.Entries))}
	for i, e := range h.Entries {
		e.Sectors = append([]string(nil), e.Sectors...)
		out.Entries[i] = e
	}
	return out
}
