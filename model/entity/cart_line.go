package entity

// CartLine is one cart entry: a product snapshot at add time plus quantity
// and an optional variant selector (e.g. size). At most one line exists per
// (product ID, variant) pair.
type CartLine struct {
	Product  Product `json:"product"`
	Variant  string  `json:"variant,omitempty"`
	Quantity int     `json:"quantity"`
}

// Key is the composite identity a line is matched by. ProductID alone when
// there is no variant, ProductID:Variant otherwise.
func (l CartLine) Key() string {
	return LineKey(l.Product.ID, l.Variant)
}

func LineKey(productID, variant string) string {
	if variant == "" {
		return productID
	}
	return productID + ":" + variant
}
