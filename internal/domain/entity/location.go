package entity

// Plant es una planta de producción/almacén.
type Plant struct {
	ID   string
	Name string
}

// Drawer es una sub-ubicación física (cajón) dentro de una planta.
type Drawer struct {
	ID   string
	Name string
}
