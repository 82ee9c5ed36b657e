package lumena

import "github.com/lumenavis/golumen/voxel"

// Size is the dimensions of a dataset in voxels, channels and
// timepoints.
type Size struct {
	X, Y, Z, C, T int
}

// Extends is the world-coordinate bounding box of a dataset.  Min and
// Max are x, y, z corners in the dataset's unit.
type Extends struct {
	Min [3]float32
	Max [3]float32
}

// DataSet is a proxy to one dataset held by the host.
type DataSet struct {
	c      *Client
	app    int32
	handle int64
}

// Handle returns the host-side handle of this dataset.
func (d *DataSet) Handle() int64 {
	return d.handle
}

// Type returns the voxel datatype of the dataset.
func (d *DataSet) Type() (voxel.DataType, error) {
	resp, err := d.c.dc.Call(msgDataSetType, &objReq{App: d.app, Handle: d.handle})
	if err != nil {
		return voxel.Invalid, err
	}
	r, ok := resp.(*typeResp)
	if !ok {
		return voxel.Invalid, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return voxel.Invalid, err
	}
	return voxel.DataType(r.Type), nil
}

// Size returns the dataset dimensions.
func (d *DataSet) Size() (Size, error) {
	resp, err := d.c.dc.Call(msgDataSetSize, &objReq{App: d.app, Handle: d.handle})
	if err != nil {
		return Size{}, err
	}
	r, ok := resp.(*sizeResp)
	if !ok {
		return Size{}, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return Size{}, err
	}
	return Size{
		X: int(r.X),
		Y: int(r.Y),
		Z: int(r.Z),
		C: int(r.C),
		T: int(r.T),
	}, nil
}

// Extends returns the world-coordinate bounding box.
func (d *DataSet) Extends() (Extends, error) {
	resp, err := d.c.dc.Call(msgDataSetExtends, &objReq{App: d.app, Handle: d.handle})
	if err != nil {
		return Extends{}, err
	}
	r, ok := resp.(*extendsResp)
	if !ok {
		return Extends{}, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return Extends{}, err
	}
	return Extends{Min: r.Min, Max: r.Max}, nil
}

// SetExtends replaces the world-coordinate bounding box.
func (d *DataSet) SetExtends(e Extends) error {
	req := &setExtendsReq{App: d.app, Handle: d.handle, Min: e.Min, Max: e.Max}
	resp, err := d.c.dc.Call(msgDataSetSetExt, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// Unit returns the spatial unit of the extends, e.g. "um".
func (d *DataSet) Unit() (string, error) {
	resp, err := d.c.dc.Call(msgDataSetUnit, &objReq{App: d.app, Handle: d.handle})
	if err != nil {
		return "", err
	}
	r, ok := resp.(*unitResp)
	if !ok {
		return "", ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return "", err
	}
	return r.Unit, nil
}

// Timepoint returns the acquisition timestamp of the given zero-based
// timepoint as "yyyy-mm-dd hh:mm:ss.mmm".
func (d *DataSet) Timepoint(index int) (string, error) {
	req := &timepointReq{App: d.app, Handle: d.handle, Index: int32(index)}
	resp, err := d.c.dc.Call(msgDataSetTimepoint, req)
	if err != nil {
		return "", err
	}
	r, ok := resp.(*timepointResp)
	if !ok {
		return "", ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return "", err
	}
	return r.Stamp, nil
}

// VolumeBytes fetches one channel and timepoint of a uint8 dataset.
// The slice is x-fastest.
func (d *DataSet) VolumeBytes(channel, timepoint int) ([]uint8, error) {
	req := &volumeReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint)}
	resp, err := d.c.dc.Call(msgVolumeBytes, req)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*bytesResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return r.Data, nil
}

// VolumeShorts fetches one channel and timepoint of a uint16 dataset.
func (d *DataSet) VolumeShorts(channel, timepoint int) ([]uint16, error) {
	req := &volumeReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint)}
	resp, err := d.c.dc.Call(msgVolumeShorts, req)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*shortsResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return r.Data, nil
}

// VolumeFloats fetches one channel and timepoint of a float32 dataset.
func (d *DataSet) VolumeFloats(channel, timepoint int) ([]float32, error) {
	req := &volumeReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint)}
	resp, err := d.c.dc.Call(msgVolumeFloats, req)
	if err != nil {
		return nil, err
	}
	r, ok := resp.(*floatsResp)
	if !ok {
		return nil, ErrBadResponse
	}
	if err := Error(int(r.Status)); err != nil {
		return nil, err
	}
	return r.Data, nil
}

// SetVolumeBytes replaces one channel and timepoint of a uint8
// dataset.  data must be x-fastest and exactly X*Y*Z long.
func (d *DataSet) SetVolumeBytes(data []uint8, channel, timepoint int) error {
	req := &setBytesReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint), Data: data}
	resp, err := d.c.dc.Call(msgSetVolumeBytes, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// SetVolumeShorts replaces one channel and timepoint of a uint16
// dataset.
func (d *DataSet) SetVolumeShorts(data []uint16, channel, timepoint int) error {
	req := &setShortsReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint), Data: data}
	resp, err := d.c.dc.Call(msgSetVolumeShorts, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}

// SetVolumeFloats replaces one channel and timepoint of a float32
// dataset.
func (d *DataSet) SetVolumeFloats(data []float32, channel, timepoint int) error {
	req := &setFloatsReq{App: d.app, Handle: d.handle, Channel: int32(channel), Timepoint: int32(timepoint), Data: data}
	resp, err := d.c.dc.Call(msgSetVolumeFloats, req)
	if err != nil {
		return err
	}
	r, ok := resp.(*statusResp)
	if !ok {
		return ErrBadResponse
	}
	return Error(int(r.Status))
}
