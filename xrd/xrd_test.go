package xrd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	knet "github.com/usccolumbia/deepKNet"
	"github.com/usccolumbia/deepKNet/xrd"
)

//silicon returns the conventional diamond-cubic silicon cell, a=5.43 A,
//eight atoms.
func silicon(t *testing.T) *knet.Crystal {
	t.Helper()
	latt, err := knet.LatticeFromParameters(5.43, 5.43, 5.43, 90, 90, 90)
	require.NoError(t, err)
	coords := [][3]float64{
		{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
		{0.25, 0.25, 0.25}, {0.25, 0.75, 0.75}, {0.75, 0.25, 0.75}, {0.75, 0.75, 0.25},
	}
	sites := make([]knet.Site, len(coords))
	for i, fc := range coords {
		sites[i] = knet.Site{FracCoords: fc, Symbol: "Si"}
	}
	c, err := knet.NewCrystal(latt, sites)
	require.NoError(t, err)
	return c
}

//TestSiliconPattern pins the classic low-angle lines of silicon under
//CuKa radiation: 111, 220 and 311, with the diamond-forbidden 200
//absent.
func TestSiliconPattern(t *testing.T) {
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	pat, feats, recip, err := sim.Pattern(silicon(t), nil)
	require.NoError(t, err)
	require.NotNil(t, recip)
	require.GreaterOrEqual(t, len(pat.Peaks), 3)

	assert.InDelta(t, 28.47, pat.Peaks[0].TwoTheta, 0.05, "111 line")
	assert.InDelta(t, 47.35, pat.Peaks[1].TwoTheta, 0.05, "220 line")
	assert.InDelta(t, 56.18, pat.Peaks[2].TwoTheta, 0.05, "311 line")
	assert.InDelta(t, 5.43/math.Sqrt(3), pat.Peaks[0].DSpacing, 1e-6)

	//the first peak is the full {111} family
	require.Len(t, pat.Peaks[0].Families, 1)
	assert.Equal(t, []int{1, 1, 1}, pat.Peaks[0].Families[0].Index)
	assert.Equal(t, 8, pat.Peaks[0].Families[0].Multiplicity)

	//diamond extinction: no peak anywhere near the 200 position
	for _, p := range pat.Peaks {
		assert.False(t, p.TwoTheta > 32.5 && p.TwoTheta < 33.5,
			"forbidden 200 reflection at 2theta=%g", p.TwoTheta)
	}

	//scaled by default: max intensity exactly 100
	max := 0.0
	for _, p := range pat.Peaks {
		if p.Intensity > max {
			max = p.Intensity
		}
	}
	assert.InDelta(t, 100.0, max, 1e-9)

	//origin row of the feature list: (total electrons / volume)^2
	v := 5.43 * 5.43 * 5.43
	require.NotEmpty(t, feats)
	assert.Equal(t, 0, feats[0].H)
	assert.Equal(t, 0, feats[0].K)
	assert.Equal(t, 0, feats[0].L)
	assert.InDelta(t, (112.0/v)*(112.0/v), feats[0].Intensity, 1e-12)
}

//TestSingleAtomOrigin checks the forward-scattering row for a one-atom
//cell: intensity (Z/V)^2 exactly.
func TestSingleAtomOrigin(t *testing.T) {
	latt, err := knet.LatticeFromParameters(3, 3, 3, 90, 90, 90)
	require.NoError(t, err)
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "Cu"}})
	require.NoError(t, err)
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	_, feats, _, err := sim.Pattern(c, nil)
	require.NoError(t, err)
	want := (29.0 / 27.0) * (29.0 / 27.0)
	assert.InDelta(t, want, feats[0].Intensity, 1e-12)
}

//TestSphereBounds checks that every emitted reciprocal point satisfies
//1e-4 <= g < 2/lambda, and that a point exactly on the limiting sphere
//is excluded while one just inside is kept. With a=2 and lambda=1 the
//(4,0,0) point sits exactly at g = 2 = 2/lambda.
func TestSphereBounds(t *testing.T) {
	latt, err := knet.LatticeFromParameters(2, 2, 2, 90, 90, 90)
	require.NoError(t, err)
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "C"}})
	require.NoError(t, err)
	sim, err := xrd.New(1.0)
	require.NoError(t, err)
	_, feats, _, err := sim.Pattern(c, nil)
	require.NoError(t, err)

	saw300 := false
	for _, f := range feats[1:] { //skip the origin row
		g := math.Sqrt(float64(f.H*f.H+f.K*f.K+f.L*f.L)) / 2
		assert.GreaterOrEqual(t, g, 1e-4)
		assert.Less(t, g, 2.0)
		assert.False(t, f.H == 4 && f.K == 0 && f.L == 0, "point on the limiting sphere not excluded")
		if f.H == 3 && f.K == 0 && f.L == 0 {
			saw300 = true
		}
	}
	assert.True(t, saw300, "point inside the sphere missing")
}

//TestDeterminism runs the simulator twice on the same structure and
//requires identical ordered outputs.
func TestDeterminism(t *testing.T) {
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	c := silicon(t)
	pat1, feats1, recip1, err := sim.Pattern(c, nil)
	require.NoError(t, err)
	pat2, feats2, recip2, err := sim.Pattern(c, nil)
	require.NoError(t, err)
	require.Equal(t, pat1, pat2)
	require.Equal(t, feats1, feats2)
	require.Equal(t, recip1, recip2)
}

//TestHexagonalFamilies checks that every index recorded for a hexagonal
//lattice is in the 4-index Miller-Bravais convention, with the third
//index equal to -h-k.
func TestHexagonalFamilies(t *testing.T) {
	latt, err := knet.LatticeFromParameters(3, 3, 5, 90, 90, 120)
	require.NoError(t, err)
	require.True(t, latt.IsHexagonal())
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "Mg"}})
	require.NoError(t, err)
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	pat, _, _, err := sim.Pattern(c, nil)
	require.NoError(t, err)
	require.NotEmpty(t, pat.Peaks)
	for _, p := range pat.Peaks {
		for _, fam := range p.Families {
			require.Len(t, fam.Index, 4)
			assert.Equal(t, -fam.Index[0]-fam.Index[1], fam.Index[2])
		}
	}
}

//TestScaling compares scaled and unscaled runs: the scaled maximum is
//exactly 100 and the relative peak ratios are preserved.
func TestScaling(t *testing.T) {
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	c := silicon(t)
	scaled, _, _, err := sim.Pattern(c, &xrd.Options{ScaleIntensity: true})
	require.NoError(t, err)
	raw, _, _, err := sim.Pattern(c, &xrd.Options{ScaleIntensity: false})
	require.NoError(t, err)
	require.Equal(t, len(raw.Peaks), len(scaled.Peaks))

	rawMax := 0.0
	for _, p := range raw.Peaks {
		if p.Intensity > rawMax {
			rawMax = p.Intensity
		}
	}
	for i := range raw.Peaks {
		assert.InDelta(t, raw.Peaks[i].Intensity/rawMax*100, scaled.Peaks[i].Intensity, 1e-9)
	}
}

//TestFeatureListUnfiltered checks the pattern/feature asymmetry: the
//feature list keeps one row per raw reflection, so it is strictly larger
//than the merged peak set.
func TestFeatureListUnfiltered(t *testing.T) {
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	pat, feats, _, err := sim.Pattern(silicon(t), nil)
	require.NoError(t, err)
	merged := 0
	for _, p := range pat.Peaks {
		for _, fam := range p.Families {
			merged += fam.Multiplicity
		}
	}
	assert.Greater(t, len(feats)-1, merged, "feature list should keep reflections the pattern filters or merges")
}

func TestInvalidInputs(t *testing.T) {
	_, err := xrd.New(0)
	assert.Error(t, err)
	_, err = xrd.New(-1.5)
	assert.Error(t, err)
	_, err = xrd.NewRadiation("ZnKa")
	assert.Error(t, err)

	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)
	c := silicon(t)

	_, _, _, err = sim.Pattern(nil, nil)
	assert.Error(t, err)
	_, _, _, err = sim.Pattern(c, &xrd.Options{Symprec: 0.1})
	assert.Error(t, err, "non-zero symprec must fail fast")
	r := [2]float64{0, 90}
	_, _, _, err = sim.Pattern(c, &xrd.Options{TwoThetaRange: &r})
	assert.Error(t, err, "restricted range must fail fast")
}

func TestUnsupportedStructure(t *testing.T) {
	latt, err := knet.LatticeFromParameters(4, 4, 4, 90, 90, 90)
	require.NoError(t, err)
	sim, err := xrd.NewRadiation("CuKa")
	require.NoError(t, err)

	//partial occupancy is rejected, naming the site
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "Fe", Occupancy: 0.5}})
	require.NoError(t, err)
	_, _, _, err = sim.Pattern(c, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupancy")
	assert.Contains(t, err.Error(), "Fe")

	//element with an atomic number but no scattering coefficients
	c, err = knet.NewCrystal(latt, []knet.Site{{Symbol: "U"}})
	require.NoError(t, err)
	_, _, _, err = sim.Pattern(c, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scattering coefficients")
	assert.Contains(t, err.Error(), "U")
}

//TestEmptyPeakSet: a wavelength too long to reach any reciprocal point
//must fail explicitly, not return an empty pattern.
func TestEmptyPeakSet(t *testing.T) {
	latt, err := knet.LatticeFromParameters(3, 3, 3, 90, 90, 90)
	require.NoError(t, err)
	c, err := knet.NewCrystal(latt, []knet.Site{{Symbol: "C"}})
	require.NoError(t, err)
	sim, err := xrd.New(100)
	require.NoError(t, err)
	_, _, _, err = sim.Pattern(c, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limiting sphere")
}

//TestErrorDecoration checks the knet.Error contract on an xrd error.
func TestErrorDecoration(t *testing.T) {
	_, err := xrd.New(-1)
	require.Error(t, err)
	kerr, ok := err.(knet.Error)
	require.True(t, ok)
	assert.True(t, kerr.Critical())
	deco := kerr.Decorate("TestErrorDecoration")
	assert.Contains(t, deco, "TestErrorDecoration")
}
