package repository

// Factory describes access to the three independent collections.
type Factory interface {
	Flavors() FlavorRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
}
