/*
 * generate.go, part of deepKNet.
 *
 *
 * Copyright 2021 The deepKNet Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/usccolumbia/deepKNet/pointcloud"
	"github.com/usccolumbia/deepKNet/xrd"
)

//Config controls point cloud generation. The zero value is usable:
//CuKa radiation, 27 points per cloud, X-ray normalization, one worker
//per CPU.
type Config struct {
	Radiation string //wavelength name for the simulator, default "CuKa"
	NPoints   int    //point budget per cloud, default 27
	Neutron   bool   //keep raw intensities instead of log-scaling
	Workers   int    //concurrent entries, default GOMAXPROCS
}

func (cfg Config) withDefaults() Config {
	if cfg.Radiation == "" {
		cfg.Radiation = "CuKa"
	}
	if cfg.NPoints == 0 {
		cfg.NPoints = 27
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

//Generate simulates a diffraction pattern for every entry, builds its
//point cloud and writes it to outDir/<id>.ptc. Entries are processed
//concurrently on cfg.Workers goroutines. The first failing entry cancels
//the rest, and its error is returned.
func Generate(ctx context.Context, entries []Entry, outDir string, cfg Config) error {
	if len(entries) == 0 {
		return Error{EmptyCorpus, "", "", []string{"Generate"}, true}
	}
	cfg = cfg.withDefaults()
	sim, err := xrd.NewRadiation(cfg.Radiation)
	if err != nil {
		return errDecorate(err, "Generate")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Error{UnableToWrite, "", err.Error(), []string{"Generate"}, true}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.Crystal == nil {
				return Error{NilEntry, e.ID, "", []string{"Generate"}, true}
			}
			_, feats, recip, err := sim.Pattern(e.Crystal, nil)
			if err != nil {
				return errDecorate(err, "Generate "+e.ID)
			}
			points, err := pointcloud.Build(feats, recip, cfg.NPoints, cfg.Neutron)
			if err != nil {
				return errDecorate(err, "Generate "+e.ID)
			}
			return writeCloud(filepath.Join(outDir, e.ID+".ptc"), e, points, cfg)
		})
	}
	return g.Wait()
}

func writeCloud(filename string, e Entry, points []pointcloud.Point, cfg Config) error {
	header := map[string]string{
		"material": e.ID,
		"npoints":  strconv.Itoa(cfg.NPoints),
		"rad":      cfg.Radiation,
		"neutron":  strconv.FormatBool(cfg.Neutron),
	}
	w, err := pointcloud.NewWriter(filename, header)
	if err != nil {
		return errDecorate(err, "Generate "+e.ID)
	}
	if err := w.WCloud(points); err != nil {
		w.Close()
		return errDecorate(err, "Generate "+e.ID)
	}
	if err := w.Close(); err != nil {
		return errDecorate(err, "Generate "+e.ID)
	}
	return nil
}

//GenerateSplits partitions the corpus with Split and materializes the
//whole training set: outDir/{train,valid,test}, each with its clouds and
//an id_prop.csv mapping material ids to target properties.
func GenerateSplits(ctx context.Context, entries []Entry, outDir string, seed int64, cfg Config) (*Splits, error) {
	splits, err := Split(entries, seed)
	if err != nil {
		return nil, errDecorate(err, "GenerateSplits")
	}
	for _, part := range []struct {
		name    string
		entries []Entry
	}{
		{"train", splits.Train},
		{"valid", splits.Valid},
		{"test", splits.Test},
	} {
		if len(part.entries) == 0 {
			continue
		}
		dir := filepath.Join(outDir, part.name)
		if err := Generate(ctx, part.entries, dir, cfg); err != nil {
			return nil, err
		}
		err := WriteIDProp(part.entries, filepath.Join(dir, "id_prop.csv"))
		if err != nil {
			return nil, errDecorate(err, "GenerateSplits")
		}
	}
	return splits, nil
}
