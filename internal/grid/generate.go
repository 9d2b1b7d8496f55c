package grid

import (
	"fmt"
	"math/rand/v2"
)

var (
	firstNames = []string{
		"Alice", "Ben", "Carla", "Derek", "Elena", "Frank", "Greta", "Hugo",
		"Ines", "Jonas", "Katja", "Lars", "Mara", "Nils", "Olga", "Paul",
	}
	lastNames = []string{
		"Abel", "Brandt", "Conrad", "Dietrich", "Ernst", "Fischer", "Graf",
		"Hoffmann", "Iversen", "Jung", "Keller", "Lorenz",
	}
	cities = []string{
		"Berlin", "Hamburg", "Munich", "Cologne", "Leipzig", "Dresden",
		"Bremen", "Stuttgart",
	}
)

// Generator produces synthetic rows and columns with session-stable IDs.
// IDs increase monotonically and are never reused within a session, so a
// regenerated batch can never collide with stale references.
type Generator struct {
	rnd    *rand.Rand
	rowSeq int
	colSeq int
}

// NewGenerator seeds a generator. The same seed yields the same data,
// which the tests rely on.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DefaultColumns returns the initial dynamic column set.
func DefaultColumns() []Column {
	return []Column{
		{ID: "c-name", Title: "Name", Field: "name"},
		{ID: "c-age", Title: "Age", Field: "age"},
		{ID: "c-city", Title: "City", Field: "city"},
		{ID: "c-active", Title: "Active", Field: "active"},
	}
}

// Batch generates n fresh rows. Roughly one row in eight gets a null age,
// which keeps the nulls-last sort policy visible in the UI.
func (g *Generator) Batch(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, g.NewRow())
	}
	return rows
}

// NewRow generates one row with the well-known fields populated.
func (g *Generator) NewRow() Row {
	g.rowSeq++
	age := Null()
	if g.rnd.IntN(8) != 0 {
		age = N(float64(18 + g.rnd.IntN(62)))
	}
	return Row{
		ID: fmt.Sprintf("r%d", g.rowSeq),
		Fields: map[string]Value{
			"name":   S(firstNames[g.rnd.IntN(len(firstNames))] + " " + lastNames[g.rnd.IntN(len(lastNames))]),
			"age":    age,
			"city":   S(cities[g.rnd.IntN(len(cities))]),
			"active": B(g.rnd.IntN(2) == 0),
		},
	}
}

// NewColumn generates one dynamic column with a generated label and
// pass-through cell rendering. Its field key is new, so existing rows
// render empty cells until data is added under it.
func (g *Generator) NewColumn() Column {
	g.colSeq++
	return Column{
		ID:    fmt.Sprintf("c-extra%d", g.colSeq),
		Title: fmt.Sprintf("Column %d", g.colSeq),
		Field: fmt.Sprintf("extra%d", g.colSeq),
	}
}
