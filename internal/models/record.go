package models

// Attendance is the body sent to the attendance endpoint.
// HoraEntrada/Entrada and HoraSalida/Salida carry the same timestamps, the API reads both pairs.
type Attendance struct {
	Fecha           string  `json:"fecha"`
	HoraEntrada     string  `json:"horaEntrada"`
	HoraSalida      string  `json:"horaSalida"`
	Entrada         string  `json:"entrada"`
	Salida          string  `json:"salida"`
	Status          string  `json:"status"`
	Empleado        int     `json:"empleado"`
	HorasTrabajadas float64 `json:"horasTrabajadas"`
}

// Production is the body sent to the production endpoint.
type Production struct {
	Fecha              string `json:"fecha"`
	Turno              string `json:"turno"`
	UnidadesProducidas int    `json:"unidadesProducidas"`
	Empleado           int    `json:"empleado"`
}

// AttendanceCreated and ProductionCreated leave ID nil when the API omits it.
type AttendanceCreated struct {
	ID *int `json:"id_reg_a"`
}

type ProductionCreated struct {
	ID *int `json:"id_reg_p"`
}
