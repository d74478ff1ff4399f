package responses

import (
	"encoding/json"
	"net/http"

	"github.com/juho05/log"
)

type Station struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
	StreamURL   string `json:"streamUrl"`
	Image       string `json:"image"`
}

type Stations struct {
	Stations []Station `json:"stations"`
}

type SearchResult struct {
	Query    string    `json:"query"`
	Stations []Station `json:"stations"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Created struct {
	ID string `json:"id"`
}

type Error struct {
	Error string `json:"error"`
}

// EncodeOrLog writes v as JSON with the given status code.
// Encoding failures are logged, not surfaced; the status line is already out.
func EncodeOrLog(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Errorf("encode response: %s", err)
	}
}

// EncodeError writes an error message as JSON with the given status code.
func EncodeError(w http.ResponseWriter, status int, message string) {
	EncodeOrLog(w, status, Error{
		Error: message,
	})
}
