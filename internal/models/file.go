package models

// FileResponse describes one saved upload.
type FileResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
