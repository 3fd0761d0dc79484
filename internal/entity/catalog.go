package entity

import "time"

// CatalogKind selects one of the three product collections.
type CatalogKind string

const (
	KindCCTV     CatalogKind = "cctv"
	KindNanoBeam CatalogKind = "nanobeam"
	KindInternet CatalogKind = "internet"
)

type CatalogItem struct {
	ID             string            `json:"id"`
	Kind           CatalogKind       `json:"-"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Image          string            `json:"image,omitempty"`
	TypeDetail     string            `json:"type_detail"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	IsActive       bool              `json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
