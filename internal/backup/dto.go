package backup

// BackupResponse acknowledges a stored JSON backup.
type BackupResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// UltimoBackup describes the most recent stored backup.
type UltimoBackup struct {
	PublicID  string `json:"public_id"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url"`
}

// UploadResult describes one uploaded document.
type UploadResult struct {
	URL     string `json:"url"`
	ID      string `json:"id"`
	Tipo    string `json:"tipo"`
	Tamanho int64  `json:"tamanho"`
}
