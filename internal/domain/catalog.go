package domain

// CatalogEntry is a read-only reference record (supplier, customer, supply
// item or product) resolved by the catalog service. The console never owns
// these; it only displays their names.
type CatalogEntry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Active  bool   `json:"active"`
}
