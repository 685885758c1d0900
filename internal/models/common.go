package models

// Origin tags recorded in completed_by. Cascade-set completion must never
// overwrite a completion the user made directly.
const (
	CompletedByUser    = "user"
	CompletedByProject = "project"
	CompletedByTask    = "task"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}
