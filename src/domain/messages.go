package domain

// ErrorMessage is sent back to the front-end when a request could not be served.
type ErrorMessage struct {
	ErrorMessage string `json:"errorMessage"`
	Valid        bool   `json:"valid"`
}
