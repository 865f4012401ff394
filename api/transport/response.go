package transport

import "encoding/json"

// Envelope wraps every JSON response the handlers emit, success and error
// alike, so clients always find the outcome under the same keys.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess wraps a payload; meta carries optional extras such as paging.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError wraps a failure with its domain error code.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String renders the envelope as JSON for log lines, best effort.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
