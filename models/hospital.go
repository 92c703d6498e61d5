package models

import (
	"bytes"
	"encoding/json"
)

// Hospital is a practice location a therapist can be booked at.
type Hospital struct {
	ID      FlexID `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UnmarshalJSON accepts either a full hospital object or a bare id.
func (h *Hospital) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		var id FlexID
		if err := id.UnmarshalJSON(b); err != nil {
			return err
		}
		*h = Hospital{ID: id}
		return nil
	}
	type plain Hospital
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*h = Hospital(p)
	return nil
}

// HospitalIDs returns the ids of the given hospitals as a lookup set.
func HospitalIDs(hospitals []Hospital) map[int64]struct{} {
	set := make(map[int64]struct{}, len(hospitals))
	for _, h := range hospitals {
		if h.ID != 0 {
			set[int64(h.ID)] = struct{}{}
		}
	}
	return set
}

// HospitalInput is the body of a hospital create or update.
type HospitalInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}
