package dataset_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knet "github.com/usccolumbia/deepKNet"
	"github.com/usccolumbia/deepKNet/dataset"
	"github.com/usccolumbia/deepKNet/pointcloud"
)

//cubic builds a one-atom cubic cell, which is enough for the glue code
//under test.
func cubic(t *testing.T, symbol string, a float64) *knet.Crystal {
	t.Helper()
	latt, err := knet.LatticeFromParameters(a, a, a, 90, 90, 90)
	require.NoError(t, err)
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: symbol}})
	require.NoError(t, err)
	return c
}

func corpus(t *testing.T, n int) []dataset.Entry {
	t.Helper()
	entries := make([]dataset.Entry, n)
	for i := range entries {
		entries[i] = dataset.Entry{
			ID:       fmt.Sprintf("mp-%d", i),
			Crystal:  cubic(t, "Si", 3.0+0.1*float64(i)),
			Property: float64(i),
		}
	}
	return entries
}

func TestSplit(t *testing.T) {
	entries := corpus(t, 10)
	s, err := dataset.Split(entries, 42)
	require.NoError(t, err)
	assert.Len(t, s.Train, 6)
	assert.Len(t, s.Valid, 2)
	assert.Len(t, s.Test, 2)

	//every entry lands in exactly one partition
	seen := map[string]int{}
	for _, part := range [][]dataset.Entry{s.Train, s.Valid, s.Test} {
		for _, e := range part {
			seen[e.ID]++
		}
	}
	require.Len(t, seen, 10)
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}

	//the same seed reproduces the partition exactly
	s2, err := dataset.Split(entries, 42)
	require.NoError(t, err)
	assert.Equal(t, s, s2)
}

func TestSplitErrors(t *testing.T) {
	_, err := dataset.Split(nil, 1)
	assert.Error(t, err)

	entries := corpus(t, 3)
	entries[2].ID = entries[0].ID
	_, err = dataset.Split(entries, 1)
	assert.Error(t, err, "duplicate id")

	entries = corpus(t, 3)
	entries[1].ID = ""
	_, err = dataset.Split(entries, 1)
	assert.Error(t, err, "empty id")
}

func TestWriteIDProp(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "id_prop.csv")
	entries := []dataset.Entry{
		{ID: "mp-1", Property: 1.25},
		{ID: "mp-2", Property: -3},
	}
	require.NoError(t, dataset.WriteIDProp(entries, fname))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "mp-1,1.25\nmp-2,-3\n", string(data))
}

func TestStats(t *testing.T) {
	entries := corpus(t, 5)
	entries[0].Crystal = cubic(t, "Fe", 3.0)
	s, err := dataset.Stats(entries)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 2.0, s.Property.Mean)
	assert.Equal(t, 2.0, s.Property.Median)
	assert.Equal(t, 0.0, s.Property.Min)
	assert.Equal(t, 4.0, s.Property.Max)
	assert.Equal(t, 1.0, s.Sites.Mean)
	assert.Equal(t, 4, s.Elements["Si"])
	assert.Equal(t, 1, s.Elements["Fe"])
	assert.InDelta(t, 27.0, s.Volume.Min, 1e-9)

	_, err = dataset.Stats(nil)
	assert.Error(t, err)
	entries[3].Crystal = nil
	_, err = dataset.Stats(entries)
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	entries := corpus(t, 4)
	err := dataset.Generate(context.Background(), entries, dir, dataset.Config{NPoints: 27})
	require.NoError(t, err)

	r, err := pointcloud.NewReader(filepath.Join(dir, "mp-0.ptc"))
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "mp-0", r.Header()["material"])
	assert.Equal(t, "27", r.Header()["npoints"])
	assert.Equal(t, "CuKa", r.Header()["rad"])
	points, err := r.RCloud()
	require.NoError(t, err)
	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 27)
}

func TestGenerateFailsFast(t *testing.T) {
	//uranium has no tabulated scattering coefficients, so its entry must
	//sink the whole run
	entries := corpus(t, 3)
	entries[1].Crystal = cubic(t, "U", 3.5)
	err := dataset.Generate(context.Background(), entries, t.TempDir(), dataset.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scattering")
}

func TestGenerateSplits(t *testing.T) {
	dir := t.TempDir()
	entries := corpus(t, 10)
	s, err := dataset.GenerateSplits(context.Background(), entries, dir, 7, dataset.Config{})
	require.NoError(t, err)
	require.NotNil(t, s)
	for _, part := range []string{"train", "valid", "test"} {
		_, err := os.Stat(filepath.Join(dir, part, "id_prop.csv"))
		assert.NoError(t, err, part)
	}
	for _, e := range s.Train {
		_, err := os.Stat(filepath.Join(dir, "train", e.ID+".ptc"))
		assert.NoError(t, err, e.ID)
	}
}
