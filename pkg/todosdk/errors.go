package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todosdk: %d %s", e.StatusCode, e.Message)
}

// parseErrorResponse builds an APIError from a response body. Bodies that
// are not a message object fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var msg MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		apiErr.Message = msg.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
