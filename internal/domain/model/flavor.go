package model

// Flavor is one entry of the pastel catalog.
type Flavor struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Position    int
}

// SeedFlavors returns the fixed catalog inserted on first read, in menu order.
// Identifiers are assigned by the caller at seed time.
func SeedFlavors() []Flavor {
	return []Flavor{
		{Name: "Misto", Price: 8.0, Description: "Queijo e presunto"},
		{Name: "Carne", Price: 9.0, Description: "Carne moída temperada"},
		{Name: "Calabresa", Price: 9.0, Description: "Calabresa defumada"},
		{Name: "Calabresa com Queijo", Price: 10.0, Description: "Calabresa defumada com queijo"},
		{Name: "Carne com Queijo", Price: 10.0, Description: "Carne moída temperada com queijo"},
		{Name: "Frango", Price: 9.0, Description: "Frango desfiado temperado"},
		{Name: "Frango com Queijo", Price: 10.0, Description: "Frango desfiado com queijo"},
		{Name: "Carne Seca", Price: 12.0, Description: "Carne seca desfiada com cebola"},
		{Name: "Tudão", Price: 15.0, Description: "Queijo, presunto, calabresa, frango e carne"},
		{Name: "4 Queijos", Price: 13.0, Description: "Mussarela, provolone, cheddar e catupiry"},
	}
}
