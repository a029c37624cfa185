package cafe

// Catalog is the curated cafe list. It is fixed for the process lifetime; there
// is no create/update surface.
type Catalog struct {
	cafes []*Cafe
	byID  map[string]*Cafe
}

func NewCatalog(cafes []*Cafe) *Catalog {
	byID := make(map[string]*Cafe, len(cafes))
	for _, c := range cafes {
		byID[c.ID()] = c
	}
	return &Catalog{cafes: cafes, byID: byID}
}

func (ct *Catalog) All() []*Cafe {
	out := make([]*Cafe, len(ct.cafes))
	copy(out, ct.cafes)
	return out
}

func (ct *Catalog) FindByID(id string) (*Cafe, bool) {
	c, ok := ct.byID[id]
	return c, ok
}

// DefaultCatalog returns the six curated cafes shipped with the product.
func DefaultCatalog() *Catalog {
	rows := []struct {
		id, name, image, tagline, location string
		rating                             float64
		openTime                           string
	}{
		{"1", "Warmth & Wonder", "/assets/cafe-1.jpg", "Cozy corner for coffee & conversation", "Downtown Arts District", 4.8, "7:00 AM - 10:00 PM"},
		{"2", "Nordic Brew", "/assets/cafe-2.jpg", "Scandinavian simplicity meets perfect coffee", "Midtown Plaza", 4.9, "6:30 AM - 9:00 PM"},
		{"3", "The Industrial", "/assets/cafe-3.jpg", "Vintage vibes & artisan coffee", "Historic Quarter", 4.7, "8:00 AM - 11:00 PM"},
		{"4", "Garden Retreat", "/assets/cafe-4.jpg", "Coffee among the flowers", "Botanical District", 4.6, "9:00 AM - 8:00 PM"},
		{"5", "Skyline Roasters", "/assets/cafe-5.jpg", "City views with every sip", "Financial District", 4.8, "6:00 AM - 10:00 PM"},
		{"6", "Artisan's Corner", "/assets/cafe-6.jpg", "Where coffee meets craftsmanship", "Creative Quarter", 4.9, "7:30 AM - 9:30 PM"},
	}

	cafes := make([]*Cafe, 0, len(rows))
	for _, s := range rows {
		c, err := NewCafe(s.id, s.name, s.image, s.tagline, s.location, s.rating, s.openTime)
		if err != nil {
			// catalog entries are compile-time data; a bad entry is a programming error
			panic(err)
		}
		cafes = append(cafes, c)
	}
	return NewCatalog(cafes)
}
