package roster

import "github.com/playperu/nostos/internal/nostos"

// limaPeople mirrors the seed migration so the service can run without a
// roster database.
var limaPeople = []nostos.Person{
	{ID: 1, Name: "Juan", LastName: "Perez", Age: 68, Address: "Av. Arequipa 1234, Lima", Phone: "+51 987654321", DNI: "12345678", Position: nostos.Position{Lat: -12.0464, Lng: -77.0428}},
	{ID: 2, Name: "Maria", LastName: "Lopez", Age: 64, Address: "Jr. Lampa 567, Lima", Phone: "+51 912345678", DNI: "87654321", Position: nostos.Position{Lat: -12.05, Lng: -77.033}},
	{ID: 3, Name: "Carlos", LastName: "Sanchez", Age: 81, Address: "Calle Piura 890, Lima", Phone: "+51 923456789", DNI: "23456789", Position: nostos.Position{Lat: -12.0432, Lng: -77.0282}},
	{ID: 4, Name: "Ana", LastName: "Ramirez", Age: 85, Address: "Av. Grau 321, Lima", Phone: "+51 934567890", DNI: "34567890", Position: nostos.Position{Lat: -12.055, Lng: -77.045}},
	{ID: 5, Name: "Luis", LastName: "Torres", Age: 60, Address: "Jr. Loreto 456, Lima", Phone: "+51 945678901", DNI: "45678901", Position: nostos.Position{Lat: -12.048, Lng: -77.03}},
	{ID: 6, Name: "Sofia", LastName: "Vargas", Age: 92, Address: "Av. Bolognesi 789, Lima", Phone: "+51 956789012", DNI: "56789012", Position: nostos.Position{Lat: -12.04, Lng: -77.02}},
}

// Lima returns the built-in roster of six persons in central Lima.
func Lima() *Registry {
	r, err := New(limaPeople)
	if err != nil {
		panic(err)
	}
	return r
}
