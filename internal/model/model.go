// Package model holds the wizard record and the request payloads the
// handlers bind into.
package model

// Wizard is the only record type the service knows about.
type Wizard struct {
	Name  string `json:"name"`
	Level uint8  `json:"level"`
}
