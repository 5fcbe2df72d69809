package model

// Country is sourced from the external countries API, never stored.
type Country struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}
