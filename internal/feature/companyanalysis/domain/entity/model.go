package entity

// ModelID はOpenRouter上のモデル識別子です。
type ModelID string

// Models は選択可能なモデルの一覧です。先頭がデフォルトです。
var Models = []ModelID{
	"openai/gpt-4o",
	"meta-llama/llama-3.2-3b-instruct:free",
	"microsoft/phi-3-mini-128k-instruct:free",
	"google/gemma-2-9b-it:free",
	"mistralai/mistral-7b-instruct:free",
}

// DefaultModel は未指定時に使うモデルです。
var DefaultModel = Models[0]

// Valid はモデルが選択可能な一覧に含まれるかを返します。
func (m ModelID) Valid() bool {
	for _, id := range Models {
		if id == m {
			return true
		}
	}
	return false
}
