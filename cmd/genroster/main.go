// Command genroster emits a synthetic roster table for local testing of the
// trade analyzer: pipe it to POST /roster or save it as a fixture.
package main

import (
	"encoding/csv"
	"flag"
	"math/rand"
	"os"
	"strconv"
)

// Default configuration constants.
const (
	defaultPlayers = 50
	defaultSeed    = 1
)

var firstNames = []string{
	"Auden", "Bram", "Casper", "Dagny", "Emeric", "Frode", "Gunnar", "Hale",
	"Iver", "Jonas", "Kellan", "Lauri", "Mika", "Niilo", "Oskar", "Petter",
	"Rasmus", "Soren", "Tomas", "Ulrik", "Viggo", "Wim",
}

var lastNames = []string{
	"Kask", "Holt", "Rand", "Ekdal", "Vik", "Lindqvist", "Moen", "Saari",
	"Tamm", "Berg", "Dahl", "Fossum", "Gran", "Hovi", "Juhl", "Kivi",
	"Lund", "Nyberg", "Orre", "Paju",
}

var positionSets = [][]string{
	{"C"}, {"LW"}, {"RW"}, {"D"}, {"G"}, {"C", "LW"}, {"LW", "RW"}, {"C", "RW"},
}

func main() {
	var (
		players   = flag.Int("players", defaultPlayers, "Number of players to generate")
		seed      = flag.Int64("seed", defaultSeed, "Random seed for reproducible output")
		delimiter = flag.String("delimiter", ",", "Field delimiter (\",\" or \"\\t\")")
		grouped   = flag.Bool("grouped-salaries", true, "Emit salaries with thousands separators")
		output    = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			os.Stderr.WriteString("failed to create output file: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if *delimiter == "\\t" || *delimiter == "\t" {
		w.Comma = '\t'
	}

	if err := write(w, *players, *seed, *grouped); err != nil {
		os.Stderr.WriteString("failed to write roster: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func write(w *csv.Writer, players int, seed int64, grouped bool) error {
	rng := rand.New(rand.NewSource(seed))

	if err := w.Write([]string{"Player", "Position", "Score", "Salary", "Age", "Goals", "Assists", "PIM", "PPP", "SOG"}); err != nil {
		return err
	}

	seen := map[string]bool{}
	for i := 0; i < players; i++ {
		name := pickName(rng, seen)
		positions := positionSets[rng.Intn(len(positionSets))]
		score := 20 + rng.Float64()*75
		salary := float64(750_000 + rng.Intn(11_000)*1_000)
		age := 18 + rng.Intn(22)
		goals := rng.Intn(55)
		assists := rng.Intn(70)

		row := []string{
			name,
			joinPositions(positions),
			strconv.FormatFloat(score, 'f', 2, 64),
			formatSalary(salary, grouped),
			strconv.Itoa(age),
			strconv.Itoa(goals),
			strconv.Itoa(assists),
			strconv.Itoa(rng.Intn(120)),
			strconv.Itoa(rng.Intn(goals + assists + 1)),
			strconv.Itoa(goals*3 + rng.Intn(150)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// pickName draws first/last combinations until an unused one comes up. The
// name pools comfortably cover the default roster size.
func pickName(rng *rand.Rand, seen map[string]bool) string {
	for {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		if !seen[name] {
			seen[name] = true
			return name
		}
	}
}

func joinPositions(positions []string) string {
	out := positions[0]
	for _, p := range positions[1:] {
		out += "/" + p
	}
	return out
}

func formatSalary(salary float64, grouped bool) string {
	if !grouped {
		return strconv.FormatFloat(salary, 'f', 0, 64)
	}
	s := strconv.FormatFloat(salary, 'f', 0, 64)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
