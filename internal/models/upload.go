package models

type UploadResponse struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type BulkUploadResponse struct {
	UploadedFiles []UploadResponse `json:"uploaded_files"`
	FailedFiles   []string         `json:"failed_files"`
}
