package models

// SyncData is the versioned, client-encrypted payload stored under a sync key.
// Content is never interpreted by the server.
type SyncData struct {
	Version int64  `json:"version"`
	Content string `json:"content"`
}

// VersionResponse is the body of GET /db/{key}/version.
type VersionResponse struct {
	Version int64 `json:"version"`
}

// RegisterResponse is the body of POST /register.
type RegisterResponse struct {
	Key string `json:"key"`
}
