package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AssignmentKey identifies one person's presence in one (day, slot) cell of a
// schedule. Day is 0..6 (Monday..Sunday), Ordinal is the 0-based position of
// the username within its slot's source list, so repeated names stay distinct.
// The key is a plain value type; it is serialized to a string only at the
// boundary where consumers need an opaque identifier.
type AssignmentKey struct {
	Day      int
	Slot     Slot
	Username string
	Ordinal  int
}

// String renders the key as "<day>-<slot>-<username>-<ordinal>". The result
// is deterministic for identical inputs, and sorting keys lexicographically
// orders assignments by slot and then by source position within the slot.
func (k AssignmentKey) String() string {
	return fmt.Sprintf("%d-%d-%s-%d", k.Day, int(k.Slot), k.Username, k.Ordinal)
}

// ParseAssignmentKey inverts String. Usernames may themselves contain "-",
// so the day and slot are taken from the first two segments and the ordinal
// from the last; everything between belongs to the username.
func ParseAssignmentKey(s string) (AssignmentKey, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return AssignmentKey{}, fmt.Errorf("malformed assignment id %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 0 || day > 6 {
		return AssignmentKey{}, fmt.Errorf("malformed day in assignment id %q", s)
	}

	slot, err := strconv.Atoi(parts[1])
	if err != nil || slot < 0 || slot > 2 {
		return AssignmentKey{}, fmt.Errorf("malformed slot in assignment id %q", s)
	}

	rest := parts[2]
	cut := strings.LastIndex(rest, "-")
	if cut <= 0 {
		return AssignmentKey{}, fmt.Errorf("malformed assignment id %q", s)
	}

	ordinal, err := strconv.Atoi(rest[cut+1:])
	if err != nil || ordinal < 0 {
		return AssignmentKey{}, fmt.Errorf("malformed ordinal in assignment id %q", s)
	}

	return AssignmentKey{
		Day:      day,
		Slot:     Slot(slot),
		Username: rest[:cut],
		Ordinal:  ordinal,
	}, nil
}

// Assignment is one person's entry in one (day, slot) cell.
type Assignment struct {
	Username string
	Key      AssignmentKey
}

// ID returns the serialized key. It is the only value a client may use to
// locate an assignment when reordering, so it must stay stable across
// re-renders of identical input.
func (a Assignment) ID() string {
	return a.Key.String()
}

type assignmentJSON struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
}

// MarshalJSON exposes the key as both "id" and "_id" for interoperability
// with clients that key off either field.
func (a Assignment) MarshalJSON() ([]byte, error) {
	id := a.Key.String()
	return json.Marshal(assignmentJSON{Username: a.Username, ID: id, LegacyID: id})
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	var raw assignmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := raw.ID
	if id == "" {
		id = raw.LegacyID
	}

	key, err := ParseAssignmentKey(id)
	if err != nil {
		return err
	}

	a.Username = raw.Username
	a.Key = key
	return nil
}
