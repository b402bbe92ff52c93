package list_models

// Model описание модели в формате OpenAI /v1/models
type Model struct {
	ID         string        `json:"id"`
	Object     string        `json:"object"`
	Created    int64         `json:"created"`
	OwnedBy    string        `json:"owned_by"`
	Permission []interface{} `json:"permission"`
	Root       string        `json:"root"`
	Parent     *string       `json:"parent"`
}

// ModelList список моделей в формате OpenAI
type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}
