// Package domain defines the core types shared by the classification
// pipeline and the historical pattern engine.
package domain

import "time"

// ProcurementType is the upstream contract type of a tender.
type ProcurementType string

const (
	ProcurementServices ProcurementType = "services"
	ProcurementSupplies ProcurementType = "supplies"
	ProcurementWorks    ProcurementType = "works"
)

// TenderRecord is one raw tender announcement as supplied by the upstream
// fetch layer. The pipeline never mutates it. Optional fields use pointers
// so that "absent" is distinguishable from a zero value.
type TenderRecord struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ClientName     string          `json:"client_name"`
	ClientTypeHint string          `json:"client_type_hint,omitempty"`
	Codes          []string        `json:"codes,omitempty"`
	Procurement    ProcurementType `json:"procurement_type"`
	Procedure      string          `json:"procedure,omitempty"`
	EUProcedure    bool            `json:"eu_procedure"`
	Published      time.Time       `json:"published"`
	Closes         *time.Time      `json:"closes,omitempty"`
	StatedValue    *float64        `json:"stated_value,omitempty"`
}
