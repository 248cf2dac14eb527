package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes data as a JSON body with the given status. A nil data
// value writes the status line and headers only.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}
