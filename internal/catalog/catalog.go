package catalog

import "github.com/adarshshan/stationaryPro/internal/domain"

// Catalog holds the fixed product set. It is seeded once at construction
// and read-only afterwards, so no locking is needed.
type Catalog struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

func New() *Catalog {
	return NewWithProducts(defaultProducts)
}

func NewWithProducts(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]domain.Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// List returns all products in seed order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int64) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

var defaultProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Ballpoint Pens",
		Description: "A pack of 10 smooth writing ballpoint pens.",
		Price:       5.99,
		Image:       "https://i.etsystatic.com/20108887/r/il/e910f0/3679175214/il_794xN.3679175214_6ndb.jpg",
	},
	{
		ID:          2,
		Name:        "A4 Notebooks",
		Description: "A set of 3 A4 sized notebooks with 100 pages each.",
		Price:       8.99,
		Image:       "https://3.imimg.com/data3/QU/UP/MY-21545078/office-stationery-1000x1000.jpg",
	},
	{
		ID:          3,
		Name:        "Highlighters",
		Description: "A pack of 5 assorted color highlighters.",
		Price:       4.5,
		Image:       "https://scooboo.in/cdn/shop/files/soni-officemate-hi-lighter-textliner-set-highlighter-scooboosoni-officemate8906001220107pack-of-4-184179.jpg?v=1713585318&width=810",
	},
	{
		ID:          4,
		Name:        "Sticky Notes",
		Description: "A pad of 100 sticky notes.",
		Price:       2.99,
		Image:       "https://5.imimg.com/data5/PY/DH/OU/SELLER-1928854/41-dmpcmtjl-1000x1000.jpg",
	},
	{
		ID:          5,
		Name:        "Art Markers",
		Description: "A set of 12 dual tip art markers.",
		Price:       15.99,
		Image:       "https://m.media-amazon.com/images/I/81sWk+9YJmL._SX522_.jpg",
	},
}
