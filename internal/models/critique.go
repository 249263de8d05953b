package models

// FileInfo is the client-observed metadata of a locally selected document.
// Only name, size and MIME type ever cross the wire; the file content itself
// is never uploaded.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size" validate:"gte=0"`
	Type string `json:"type"`
}

// FileInfoMap holds one optional FileInfo per document role.
type FileInfoMap struct {
	Career *FileInfo `json:"career"`
	Resume *FileInfo `json:"resume"`
}

type CritiqueRequest struct {
	FileInfo FileInfoMap `json:"fileInfo"`
	JDs      []string    `json:"jds" validate:"max=5"`
}

// CritiqueResponse carries exactly one of Result or Error.
type CritiqueResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
