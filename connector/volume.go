/*
	This file implements the volume marshaller: tag-dispatched,
	validated transfer of one (channel, timepoint) slab between a
	voxel.Volume and the host dataset.
*/

package connector

import (
	"fmt"

	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/voxel"
)

// volumeTarget resolves the dataset a transfer should hit.  A nil ds
// selects the application's active dataset.  ok is false when the
// silent no-op contract applies: the host is gone, no dataset is
// loaded, or the dataset holds no voxels.
func (c *Connector) volumeTarget(ds *lumena.DataSet) (target *lumena.DataSet, sz lumena.Size, ok bool, err error) {
	if !c.IsAlive() {
		return nil, lumena.Size{}, false, nil
	}
	if ds == nil {
		ds, err = c.app.DataSet()
		if err != nil {
			return nil, lumena.Size{}, false, err
		}
		if ds == nil {
			return nil, lumena.Size{}, false, nil
		}
	}
	sz, err = ds.Size()
	if err != nil {
		return nil, lumena.Size{}, false, err
	}
	if sz.X == 0 {
		return nil, lumena.Size{}, false, nil
	}
	return ds, sz, true, nil
}

// checkIndices converts channel and timepoint from the connector's
// base to 0-based and bounds-checks them against the dataset extents.
// Error messages quote the caller's own base.
func (c *Connector) checkIndices(channel, timepoint int, sz lumena.Size) (int, int, error) {
	ch := channel - c.base
	tp := timepoint - c.base
	if ch < 0 || ch >= sz.C {
		return 0, 0, fmt.Errorf("channel %d outside [%d, %d]", channel, c.base, sz.C-1+c.base)
	}
	if tp < 0 || tp >= sz.T {
		return 0, 0, fmt.Errorf("timepoint %d outside [%d, %d]", timepoint, c.base, sz.T-1+c.base)
	}
	return ch, tp, nil
}

// GetDataVolume reads one channel and timepoint of the active dataset
// as an (X, Y, Z) volume in the host's x-fastest order.
//
// When the host is gone, no dataset is loaded, or the dataset holds
// no voxels, it returns an empty volume and a nil error; an absent
// connection is not exceptional.  Out-of-range indices and corrupt
// datatype tags are errors, raised before any remote data call.
func (c *Connector) GetDataVolume(channel, timepoint int) (voxel.Volume, error) {
	return c.GetDataVolumeFrom(nil, channel, timepoint)
}

// GetDataVolumeFrom is GetDataVolume against an explicit dataset
// instead of the active one.
func (c *Connector) GetDataVolumeFrom(ds *lumena.DataSet, channel, timepoint int) (voxel.Volume, error) {
	ds, sz, ok, err := c.volumeTarget(ds)
	if err != nil || !ok {
		return voxel.Volume{}, err
	}
	ch, tp, err := c.checkIndices(channel, timepoint, sz)
	if err != nil {
		return voxel.Volume{}, err
	}
	t, err := ds.Type()
	if err != nil {
		return voxel.Volume{}, err
	}
	switch t {
	case voxel.Uint8:
		data, err := ds.VolumeBytes(ch, tp)
		if err != nil {
			return voxel.Volume{}, err
		}
		return voxel.NewUint8(sz.X, sz.Y, sz.Z, data)
	case voxel.Uint16:
		data, err := ds.VolumeShorts(ch, tp)
		if err != nil {
			return voxel.Volume{}, err
		}
		return voxel.NewUint16(sz.X, sz.Y, sz.Z, data)
	case voxel.Float32:
		data, err := ds.VolumeFloats(ch, tp)
		if err != nil {
			return voxel.Volume{}, err
		}
		return voxel.NewFloat32(sz.X, sz.Y, sz.Z, data)
	default:
		return voxel.Volume{}, fmt.Errorf("dataset reports unknown datatype tag %v", t)
	}
}

// GetDataVolumeRM reads like GetDataVolume, then permutes the first
// two axes so the volume is (Y, X, Z) for row-major callers.  All
// validation and the dead-connection contract are GetDataVolume's.
func (c *Connector) GetDataVolumeRM(channel, timepoint int) (voxel.Volume, error) {
	return c.GetDataVolumeRMFrom(nil, channel, timepoint)
}

// GetDataVolumeRMFrom is GetDataVolumeRM against an explicit dataset.
func (c *Connector) GetDataVolumeRMFrom(ds *lumena.DataSet, channel, timepoint int) (voxel.Volume, error) {
	vol, err := c.GetDataVolumeFrom(ds, channel, timepoint)
	if err != nil || vol.Empty() {
		return vol, err
	}
	return vol.RowMajor(), nil
}

// SetDataVolume writes one channel and timepoint of the active
// dataset from vol, which must be in the host's x-fastest order.
// Single-plane volumes (NZ == 1) are a slab like any other.
//
// When the host is gone, no dataset is loaded, or the dataset holds
// no voxels, the write is silently skipped with a nil error, matching
// the read side.  Out-of-range indices, a volume type differing from
// the dataset's declared tag, and a shape differing from the dataset
// extents are errors, raised before any remote data call; there are
// no partial writes.
func (c *Connector) SetDataVolume(vol voxel.Volume, channel, timepoint int) error {
	ds, sz, ok, err := c.volumeTarget(nil)
	if err != nil || !ok {
		return err
	}
	ch, tp, err := c.checkIndices(channel, timepoint, sz)
	if err != nil {
		return err
	}
	t, err := ds.Type()
	if err != nil {
		return err
	}
	if vol.Type != t {
		return fmt.Errorf("volume type %v does not match dataset type %v", vol.Type, t)
	}
	if vol.NX != sz.X || vol.NY != sz.Y || vol.NZ != sz.Z {
		return fmt.Errorf("volume shape (%d, %d, %d) does not match dataset extents (%d, %d, %d)",
			vol.NX, vol.NY, vol.NZ, sz.X, sz.Y, sz.Z)
	}
	switch t {
	case voxel.Uint8:
		return ds.SetVolumeBytes(vol.U8, ch, tp)
	case voxel.Uint16:
		return ds.SetVolumeShorts(vol.U16, ch, tp)
	case voxel.Float32:
		return ds.SetVolumeFloats(vol.F32, ch, tp)
	default:
		return fmt.Errorf("dataset reports unknown datatype tag %v", t)
	}
}
