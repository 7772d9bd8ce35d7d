package catalog

import "github.com/ordena-app/ordena/internal/domain"

// UnknownName is displayed when a document references a catalog id that no
// longer resolves.
const UnknownName = "unknown"

// Directory is a session-scoped snapshot of the catalog collections with
// name lookup by id.
type Directory struct {
	suppliers map[int]domain.CatalogEntry
	customers map[int]domain.CatalogEntry
	supplies  map[int]domain.CatalogEntry
	products  map[int]domain.CatalogEntry

	supplierList []domain.CatalogEntry
	customerList []domain.CatalogEntry
	supplyList   []domain.CatalogEntry
	productList  []domain.CatalogEntry
}

func NewDirectory(suppliers, customers, supplies, products []domain.CatalogEntry) *Directory {
	return &Directory{
		suppliers:    index(suppliers),
		customers:    index(customers),
		supplies:     index(supplies),
		products:     index(products),
		supplierList: suppliers,
		customerList: customers,
		supplyList:   supplies,
		productList:  products,
	}
}

func (d *Directory) SupplierName(id int) string { return nameOf(d.suppliers, id) }
func (d *Directory) CustomerName(id int) string { return nameOf(d.customers, id) }
func (d *Directory) SupplyName(id int) string   { return nameOf(d.supplies, id) }
func (d *Directory) ProductName(id int) string  { return nameOf(d.products, id) }

// ActiveSuppliers returns the suppliers selectable in a new purchase; the
// console hides inactive references from every picker.
func (d *Directory) ActiveSuppliers() []domain.CatalogEntry { return Active(d.supplierList) }
func (d *Directory) ActiveCustomers() []domain.CatalogEntry { return Active(d.customerList) }
func (d *Directory) ActiveSupplies() []domain.CatalogEntry  { return Active(d.supplyList) }
func (d *Directory) Products() []domain.CatalogEntry        { return d.productList }

// Active filters a reference collection down to the entries that may be
// selected in new documents. Inactive entries still resolve by id so existing
// documents keep rendering their names.
func Active(entries []domain.CatalogEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

func index(entries []domain.CatalogEntry) map[int]domain.CatalogEntry {
	m := make(map[int]domain.CatalogEntry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}

func nameOf(m map[int]domain.CatalogEntry, id int) string {
	if e, ok := m[id]; ok {
		return e.Name
	}
	return UnknownName
}

