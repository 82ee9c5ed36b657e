package voxel

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyVolume is returned by Stats when there are no voxels to summarize.
var ErrEmptyVolume = errors.New("empty volume")

// Stats summarizes the intensities of one volume.
type Stats struct {
	Min, Max float64
	Mean     float64
	Stddev   float64
}

func (v Volume) float64s() []float64 {
	out := make([]float64, v.Len())
	switch v.Type {
	case Uint8:
		for i, b := range v.U8 {
			out[i] = float64(b)
		}
	case Uint16:
		for i, s := range v.U16 {
			out[i] = float64(s)
		}
	case Float32:
		for i, f := range v.F32 {
			out[i] = float64(f)
		}
	}
	return out
}

// Stats computes min, max, mean and sample standard deviation over every
// voxel in the volume.
func (v Volume) Stats() (Stats, error) {
	if v.Empty() {
		return Stats{}, ErrEmptyVolume
	}
	xs := v.float64s()
	return Stats{
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   stat.Mean(xs, nil),
		Stddev: stat.StdDev(xs, nil),
	}, nil
}
