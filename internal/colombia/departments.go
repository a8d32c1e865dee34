package colombia

import "sort"

// departmentCities maps each Colombian department (plus the capital
// district) to its principal cities. Names are stored with their official
// spelling; lookups are case-sensitive on purpose, the frontend sends
// values picked from this same list.
var departmentCities = map[string][]string{
	"Amazonas":                   {"Leticia", "Puerto Nariño"},
	"Antioquia":                  {"Medellín", "Bello", "Itagüí", "Envigado", "Rionegro", "Apartadó"},
	"Arauca":                     {"Arauca", "Saravena", "Tame"},
	"Atlántico":                  {"Barranquilla", "Soledad", "Malambo", "Sabanalarga"},
	"Bogotá D.C.":                {"Bogotá"},
	"Bolívar":                    {"Cartagena", "Magangué", "Turbaco"},
	"Boyacá":                     {"Tunja", "Duitama", "Sogamoso", "Chiquinquirá"},
	"Caldas":                     {"Manizales", "La Dorada", "Chinchiná"},
	"Caquetá":                    {"Florencia", "San Vicente del Caguán"},
	"Casanare":                   {"Yopal", "Aguazul", "Villanueva"},
	"Cauca":                      {"Popayán", "Santander de Quilichao", "Puerto Tejada"},
	"Cesar":                      {"Valledupar", "Aguachica", "Bosconia"},
	"Chocó":                      {"Quibdó", "Istmina"},
	"Córdoba":                    {"Montería", "Cereté", "Sahagún", "Lorica"},
	"Cundinamarca":               {"Soacha", "Zipaquirá", "Facatativá", "Chía", "Girardot", "Fusagasugá"},
	"Guainía":                    {"Inírida"},
	"Guaviare":                   {"San José del Guaviare"},
	"Huila":                      {"Neiva", "Pitalito", "Garzón"},
	"La Guajira":                 {"Riohacha", "Maicao", "Uribia"},
	"Magdalena":                  {"Santa Marta", "Ciénaga", "Fundación"},
	"Meta":                       {"Villavicencio", "Acacías", "Granada"},
	"Nariño":                     {"Pasto", "Tumaco", "Ipiales"},
	"Norte de Santander":         {"Cúcuta", "Ocaña", "Pamplona", "Villa del Rosario"},
	"Putumayo":                   {"Mocoa", "Puerto Asís"},
	"Quindío":                    {"Armenia", "Calarcá", "Montenegro"},
	"Risaralda":                  {"Pereira", "Dosquebradas", "Santa Rosa de Cabal"},
	"San Andrés y Providencia":   {"San Andrés", "Providencia"},
	"Santander":                  {"Bucaramanga", "Floridablanca", "Girón", "Piedecuesta", "Barrancabermeja"},
	"Sucre":                      {"Sincelejo", "Corozal", "San Marcos"},
	"Tolima":                     {"Ibagué", "Espinal", "Melgar", "Honda"},
	"Valle del Cauca":            {"Cali", "Palmira", "Buenaventura", "Tuluá", "Cartago", "Buga"},
	"Vaupés":                     {"Mitú"},
	"Vichada":                    {"Puerto Carreño"},
}

// Departments returns the 32 departments plus Bogotá D.C., sorted.
func Departments() []string {
	names := make([]string, 0, len(departmentCities))
	for name := range departmentCities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsValidDepartment reports whether name is an official department (or the
// capital district). Comparison is case-sensitive.
func IsValidDepartment(name string) bool {
	_, ok := departmentCities[name]

	return ok
}

// CitiesOf returns the known cities of a department, or nil when the
// department itself is unknown.
func CitiesOf(department string) []string {
	cities, ok := departmentCities[department]
	if !ok {
		return nil
	}

	out := make([]string, len(cities))
	copy(out, cities)

	return out
}

// IsValidCity reports whether city belongs to department.
func IsValidCity(department, city string) bool {
	for _, c := range departmentCities[department] {
		if c == city {
			return true
		}
	}

	return false
}
