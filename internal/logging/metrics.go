package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Logger handles all run output and artifact saving
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  os.Stdout,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// SetConsole redirects the per-generation console line. A nil writer silences it.
func (l *Logger) SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.console = w
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	// Open CSV file
	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"problem", "generation", "best_fitness", "mean_fitness", "std_fitness", "worst_fitness", "best",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	// Open JSON file
	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// Snapshot is what an engine exposes after a generation
type Snapshot struct {
	Problem    string
	Generation int
	Costs      []float64 // fitness of every population member
	Best       []int     // best chromosome
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Problem      string  `json:"problem"`
	Generation   int     `json:"generation"`
	BestFitness  float64 `json:"best_fitness"`
	MeanFitness  float64 `json:"mean_fitness"`
	StdFitness   float64 `json:"std_fitness"`
	WorstFitness float64 `json:"worst_fitness"`
	Best         []int   `json:"best"`
}

// Summarize computes population statistics for a snapshot
func Summarize(s Snapshot) GenerationSummary {
	summary := GenerationSummary{
		Problem:    s.Problem,
		Generation: s.Generation,
		Best:       s.Best,
	}
	if len(s.Costs) == 0 {
		return summary
	}

	summary.MeanFitness, summary.StdFitness = stat.MeanStdDev(s.Costs, nil)
	summary.BestFitness = floats.Min(s.Costs)
	summary.WorstFitness = floats.Max(s.Costs)
	return summary
}

// LogGeneration logs a generation summary
func (l *Logger) LogGeneration(s Snapshot) GenerationSummary {
	summary := Summarize(s)
	if !l.initialized {
		return summary
	}

	// Write CSV row
	row := []string{
		summary.Problem,
		strconv.Itoa(summary.Generation),
		fmt.Sprintf("%.4f", summary.BestFitness),
		fmt.Sprintf("%.4f", summary.MeanFitness),
		fmt.Sprintf("%.4f", summary.StdFitness),
		fmt.Sprintf("%.4f", summary.WorstFitness),
		joinInts(summary.Best),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	// Write JSON line
	jsonLine, _ := json.Marshal(summary)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	fmt.Fprintf(l.console, "Gen %4d | Best: %10.2f | Mean: %10.2f | Std: %9.2f | Worst: %10.2f | %s\n",
		summary.Generation, summary.BestFitness, summary.MeanFitness, summary.StdFitness,
		summary.WorstFitness, joinInts(summary.Best))
	return summary
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

// Champion is the saved form of the best chromosome of a run
type Champion struct {
	Problem    string    `json:"problem"`
	Generation int       `json:"generation"`
	Fitness    float64   `json:"fitness"`
	Genome     []int     `json:"genome"`
	History    []float64 `json:"history,omitempty"`
}

// SaveChampion saves the champion to a file
func SaveChampion(path string, c Champion) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion loads a champion from a file
func LoadChampion(path string) (*Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Champion
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
