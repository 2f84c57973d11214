// Package favorites keeps the user's saved cities and their notes.
package favorites

import (
	"slices"

	"github.com/i474232898/weathernow/internal/weather"
)

// City is one saved city. Temp is the temperature seen when it was added and
// is never refreshed.
type City struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Temp float64 `json:"temp"`
	Memo string  `json:"memo"`
}

// List is the ordered favorites list. Name is unique within a List.
type List []City

// Has reports whether a city with exactly this name is in the list.
func (l List) Has(name string) bool {
	names := make(map[string]struct{}, len(l))
	for _, c := range l {
		names[c.Name] = struct{}{}
	}
	_, ok := names[name]
	return ok
}

// Add returns list with a new entry for rec under id. The list is returned
// unchanged when rec is nil or its name is already present.
func Add(list List, rec *weather.Record, id int64) List {
	if rec == nil || list.Has(rec.Name) {
		return list
	}
	out := make(List, len(list), len(list)+1)
	copy(out, list)
	return append(out, City{
		ID:   id,
		Name: rec.Name,
		Temp: rec.TemperatureC(),
	})
}

// UpdateMemo returns a copy of list with the memo of entry id replaced.
// Unknown ids leave the list unchanged.
func UpdateMemo(list List, id int64, memo string) List {
	i := slices.IndexFunc(list, func(c City) bool { return c.ID == id })
	if i < 0 {
		return list
	}
	out := slices.Clone(list)
	out[i].Memo = memo
	return out
}

// Remove returns list without entry id. Unknown ids leave the list unchanged.
func Remove(list List, id int64) List {
	i := slices.IndexFunc(list, func(c City) bool { return c.ID == id })
	if i < 0 {
		return list
	}
	out := make(List, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// Clear returns an empty list.
func Clear() List {
	return List{}
}

// MaxID returns the largest id in the list, or 0 for an empty list.
func (l List) MaxID() int64 {
	var highest int64
	for _, c := range l {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest
}
