package logging

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize(Snapshot{
		Problem:    "tour",
		Generation: 3,
		Costs:      []float64{4, 2, 6, 8},
		Best:       []int{1, 0},
	})
	assert.Equal(t, 2.0, s.BestFitness)
	assert.Equal(t, 8.0, s.WorstFitness)
	assert.Equal(t, 5.0, s.MeanFitness)
	// sample std-dev of {2,4,6,8}
	assert.InDelta(t, 2.5819888974716, s.StdFitness, 1e-9)

	empty := Summarize(Snapshot{Problem: "curve"})
	assert.Zero(t, empty.BestFitness)
}

func TestLogger_WritesCSVAndJSONL(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(filepath.Join(dir, "runs", "run.csv"), filepath.Join(dir, "runs", "run.jsonl"))
	require.NoError(t, err)
	var console bytes.Buffer
	l.SetConsole(&console)
	require.NoError(t, l.Init())

	l.LogGeneration(Snapshot{Problem: "curve", Generation: 1, Costs: []float64{3, 1}, Best: []int{40, 125}})
	l.LogGeneration(Snapshot{Problem: "curve", Generation: 2, Costs: []float64{1, 1}, Best: []int{40, 125}})
	l.Close()

	f, err := os.Open(filepath.Join(dir, "runs", "run.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "best_fitness", rows[0][2])
	assert.Equal(t, []string{"curve", "1", "1.0000", "2.0000", "1.4142", "3.0000", "40 125"}, rows[1])

	jf, err := os.Open(filepath.Join(dir, "runs", "run.jsonl"))
	require.NoError(t, err)
	defer jf.Close()
	var lines []GenerationSummary
	sc := bufio.NewScanner(jf)
	for sc.Scan() {
		var s GenerationSummary
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		lines = append(lines, s)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[1].Generation)

	assert.Contains(t, console.String(), "Gen    2")
}

func TestLogger_UninitializedOnlySummarizes(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(filepath.Join(dir, "a.csv"), filepath.Join(dir, "a.jsonl"))
	require.NoError(t, err)

	s := l.LogGeneration(Snapshot{Costs: []float64{2}})
	assert.Equal(t, 2.0, s.BestFitness)
	_, err = os.Stat(filepath.Join(dir, "a.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestChampion_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "champion.json")
	want := Champion{Problem: "tour", Generation: 9, Fitness: 12.5, Genome: []int{2, 0, 1}, History: []float64{20, 12.5}}
	require.NoError(t, SaveChampion(path, want))

	got, err := LoadChampion(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
