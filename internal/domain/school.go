// Package domain contains the core types for school cluster prediction.
package domain

// SchoolRecord is a single school submitted for cluster prediction.
// Either field may be empty; normalization handles that downstream.
type SchoolRecord struct {
	Name         string `json:"name"`
	Municipality string `json:"municipality"`
}
