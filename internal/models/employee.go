package models

// FullName is a given name plus the paternal and maternal family names.
type FullName struct {
	Nombre    string `json:"nombre"`
	ApellidoP string `json:"apellido_p"`
	ApellidoM string `json:"apellido_m"`
}

// Employee is the body sent to the employee creation endpoint.
type Employee struct {
	FullName

	Area          string  `json:"area"`
	Turno         string  `json:"turno"`
	SalarioDiario float64 `json:"salarioDiario"`
	Activo        bool    `json:"activo"`
}

// EmployeeCreated is the part of the creation response the seeder cares about.
type EmployeeCreated struct {
	ID int `json:"id_empleado"`
}
