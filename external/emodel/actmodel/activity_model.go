package actmodel

const (
	ProcessedMsg = "Activity processed successfully"
)

// ActivityPayload is whatever JSON object the client reported. Nothing reads
// its keys.
type ActivityPayload map[string]any

type ActivityResult struct {
	Msg string `json:"msg"`
}

func Processed() ActivityResult {
	return ActivityResult{Msg: ProcessedMsg}
}
