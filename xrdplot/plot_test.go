package xrdplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knet "github.com/usccolumbia/deepKNet"
	"github.com/usccolumbia/deepKNet/xrd"
	"github.com/usccolumbia/deepKNet/xrdplot"
)

func TestPlotPattern(t *testing.T) {
	latt, err := knet.LatticeFromParameters(4.0, 4.0, 4.0, 90, 90, 90)
	require.NoError(t, err)
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "Fe"}})
	require.NoError(t, err)
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	pat, _, _, err := sim.Pattern(c, nil)
	require.NoError(t, err)

	plotname := filepath.Join(t.TempDir(), "fe")
	require.NoError(t, xrdplot.PlotPattern(pat, "bcc-ish iron", plotname))
	info, err := os.Stat(plotname + ".png")
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotPatternNil(t *testing.T) {
	assert.Error(t, xrdplot.PlotPattern(nil, "x", "y"))
	assert.Error(t, xrdplot.PlotPattern(&xrd.Pattern{}, "x", "y"))
}
