package util

import "encoding/json"

// PhasesToJSON converts a slice of phase durations in seconds into a JSON array string.
func PhasesToJSON(phases []int) string {
	if len(phases) == 0 {
		return "[]"
	}
	bytes, _ := json.Marshal(phases)
	return string(bytes)
}

// JSONToPhases converts a JSON array string back into a slice of phase durations.
func JSONToPhases(jsonStr string) []int {
	var phases []int
	if jsonStr == "" || jsonStr == "null" {
		return []int{}
	}
	json.Unmarshal([]byte(jsonStr), &phases)
	return phases
}
