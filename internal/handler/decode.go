package handler

import (
	"encoding/json"
	"net/http"
)

// decodeJSON : decoding errors are mapped to 400 by the responder
func decodeJSON(r *http.Request, target interface{}) error {
	return json.NewDecoder(r.Body).Decode(target)
}
