package fixtures

// Pools holds the value sets fixtures are drawn from. Treat it as immutable once passed to a Generator.
type Pools struct {
	GivenNames  []string
	FamilyNames []string
	Areas       []string
	Shifts      []string
	Statuses    []string
}

// DefaultPools returns the pools the seeder uses against the real API.
func DefaultPools() Pools {
	return Pools{
		GivenNames: []string{
			"Juan", "Carlos", "Luis", "Miguel", "Jose", "Jorge", "Felipe", "Hector",
			"Marco", "Ricardo", "Fernando", "Pablo", "Rafael", "Alberto", "Andres",
			"Roberto", "Eduardo", "Cristian", "Mario", "Diego", "Omar", "Sergio",
			"Francisco", "Adrian", "Hernan", "Erick", "Kevin", "Oscar", "Manuel",
			"Víctor", "Alan", "Emilio", "Ramiro", "Leonardo", "Esteban", "Bruno",
			"Mauricio", "Gustavo", "Elías", "Tomás",
		},
		FamilyNames: []string{
			"Hernandez", "Martinez", "Gomez", "Perez", "Lopez", "Garcia",
			"Rodriguez", "Sanchez", "Ramirez", "Cruz", "Torres", "Rivera",
			"Gonzalez", "Flores", "Vargas", "Castillo", "Ortega", "Ruiz",
			"Aguilar", "Chavez", "Dominguez", "Silva", "Navarro", "Salazar",
			"Mendoza", "Ponce", "Morales", "Soto", "Camacho", "Cortés",
			"Arias", "Palacios", "Estrada", "Valdez", "Montoya", "Ramos",
		},
		Areas:    []string{"OFICINA", "PRODUCCION", "INVENTARIO"},
		Shifts:   []string{"MATUTINO", "VESPERTINO", "NOCTURNO", "MIXTO"},
		Statuses: []string{"EN_TURNO", "FINALIZADO"},
	}
}
