package product

// DefaultCategory is where products land when their category is deleted or
// never set.
const DefaultCategory = "General"

// Variant is a named sub-option (thickness, size) with its own price pair.
type Variant struct {
	Name  string  `json:"name"`
	MRP   float64 `json:"mrp"`
	Price float64 `json:"price"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	MRP         float64   `json:"mrp"`
	Size        string    `json:"size"`
	Material    string    `json:"material"`
	Warranty    string    `json:"warranty"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Image       string    `json:"image"`
	Variants    []Variant `json:"variants"`
	Description string    `json:"description"`
}

type NewProductInput struct {
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	MRP         float64   `json:"mrp"`
	Size        string    `json:"size"`
	Material    string    `json:"material"`
	Warranty    string    `json:"warranty"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Variants    []Variant `json:"variants"`
	Description string    `json:"description"`
}
