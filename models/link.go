package models

import (
	"encoding/json"
	"time"
)

// Link is a short-lived alias for a sync key.
type Link struct {
	ID        string
	SyncKey   string
	CreatedAt time.Time
}

// LinkRequest is the body of POST /links.
type LinkRequest struct {
	SyncKey string `json:"syncKey"`
}

type linkJSON struct {
	ID        string `json:"id"`
	SyncKey   string `json:"syncKey"`
	CreatedAt int64  `json:"createdAt"`
}

// MarshalJSON encodes CreatedAt as unix milliseconds.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{
		ID:        l.ID,
		SyncKey:   l.SyncKey,
		CreatedAt: l.CreatedAt.UnixMilli(),
	})
}

func (l *Link) UnmarshalJSON(b []byte) error {
	var v linkJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	l.ID = v.ID
	l.SyncKey = v.SyncKey
	l.CreatedAt = time.UnixMilli(v.CreatedAt)
	return nil
}
