package tour

// City is a named point on the map
type City struct {
	Name string `json:"name" yaml:"name"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
}

// Cities is the fixed table every tour is measured against
var Cities = []City{
	{Name: "Mexico City", X: 10, Y: 190},
	{Name: "Guadalajara", X: 20, Y: 20},
	{Name: "Monterrey", X: 30, Y: 250},
	{Name: "Puebla", X: 40, Y: 59},
	{Name: "Tijuana", X: 57, Y: 200},
	{Name: "León", X: 61, Y: 68},
	{Name: "Cancún", X: 76, Y: 81},
	{Name: "Mérida", X: 80, Y: 80},
	{Name: "Toluca", X: 99, Y: 19},
	{Name: "Querétaro", X: 100, Y: 20},
	{Name: "Chihuahua", X: 106, Y: 28},
	{Name: "Saltillo", X: 120, Y: 25},
	{Name: "Morelia", X: 131, Y: 19},
	{Name: "Culiacán", X: 147, Y: 24},
	{Name: "Aguascalientes", X: 102, Y: 21},
	{Name: "Hermosillo", X: 110, Y: 29},
	{Name: "Veracruz", X: 96, Y: 19},
	{Name: "Villahermosa", X: 92, Y: 17},
	{Name: "Durango", X: 104, Y: 24},
	{Name: "Torreón", X: 103, Y: 25},
}
