package voxel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/snksoft/crc"
)

// crcTable is shared by every Checksum call; snksoft tables are concurrent safe.
var crcTable = crc.NewTable(crc.CRC64ECMA)

// Volume is one (channel, timepoint) slab of voxels.  The backing buffer is
// flat in the host's order, x fastest, so the voxel at (x, y, z) lives at
// index x + NX*(y + NY*z).  Exactly one of U8, U16, F32 is non-nil and which
// one agrees with Type.  A 2-D plane is a Volume with NZ == 1.
type Volume struct {
	Type       DataType
	NX, NY, NZ int
	U8         []uint8
	U16        []uint16
	F32        []float32
}

func checkDims(nx, ny, nz, n int) error {
	if nx < 0 || ny < 0 || nz < 0 {
		return fmt.Errorf("negative volume dimension (%d, %d, %d)", nx, ny, nz)
	}
	if want := nx * ny * nz; n != want {
		return fmt.Errorf("buffer holds %d voxels, dimensions (%d, %d, %d) need %d", n, nx, ny, nz, want)
	}
	return nil
}

// NewUint8 wraps data as an (nx, ny, nz) uint8 volume.  The slice is not
// copied.  len(data) must equal nx*ny*nz.
func NewUint8(nx, ny, nz int, data []uint8) (Volume, error) {
	if err := checkDims(nx, ny, nz, len(data)); err != nil {
		return Volume{}, err
	}
	return Volume{Type: Uint8, NX: nx, NY: ny, NZ: nz, U8: data}, nil
}

// NewUint16 wraps data as an (nx, ny, nz) uint16 volume.  The slice is not
// copied.  len(data) must equal nx*ny*nz.
func NewUint16(nx, ny, nz int, data []uint16) (Volume, error) {
	if err := checkDims(nx, ny, nz, len(data)); err != nil {
		return Volume{}, err
	}
	return Volume{Type: Uint16, NX: nx, NY: ny, NZ: nz, U16: data}, nil
}

// NewFloat32 wraps data as an (nx, ny, nz) float32 volume.  The slice is not
// copied.  len(data) must equal nx*ny*nz.
func NewFloat32(nx, ny, nz int, data []float32) (Volume, error) {
	if err := checkDims(nx, ny, nz, len(data)); err != nil {
		return Volume{}, err
	}
	return Volume{Type: Float32, NX: nx, NY: ny, NZ: nz, F32: data}, nil
}

// Zeros returns an all-zero volume of the given type and extents.
// It panics on an invalid tag, which is a programmer error.
func Zeros(t DataType, nx, ny, nz int) Volume {
	n := nx * ny * nz
	switch t {
	case Uint8:
		return Volume{Type: t, NX: nx, NY: ny, NZ: nz, U8: make([]uint8, n)}
	case Uint16:
		return Volume{Type: t, NX: nx, NY: ny, NZ: nz, U16: make([]uint16, n)}
	case Float32:
		return Volume{Type: t, NX: nx, NY: ny, NZ: nz, F32: make([]float32, n)}
	}
	panic(fmt.Sprintf("voxel: Zeros called with %v", t))
}

// Len returns the number of voxels.
func (v Volume) Len() int {
	return v.NX * v.NY * v.NZ
}

// Empty reports whether the volume holds no voxels.  Reads against a host
// that is not attached return an empty volume.
func (v Volume) Empty() bool {
	return v.Len() == 0
}

// Bytes returns the voxel stream as little-endian bytes.  The result is a
// fresh allocation for every call.
func (v Volume) Bytes() []byte {
	switch v.Type {
	case Uint8:
		return append([]byte(nil), v.U8...)
	case Uint16:
		buf := make([]byte, 2*len(v.U16))
		for i, s := range v.U16 {
			binary.LittleEndian.PutUint16(buf[2*i:], s)
		}
		return buf
	case Float32:
		buf := make([]byte, 4*len(v.F32))
		for i, f := range v.F32 {
			binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
		}
		return buf
	}
	return nil
}

// Checksum returns the CRC-64/ECMA of the little-endian voxel stream.
func (v Volume) Checksum() uint64 {
	return crcTable.CalculateCRC(v.Bytes())
}

// RowMajor returns a copy with the first two axes swapped, (X, Y, Z) to
// (Y, X, Z), for callers whose array convention is row major.  The voxel at
// (x, y, z) of the receiver lands at (y, x, z) of the result, and the result
// reports extents (NY, NX, NZ).
func (v Volume) RowMajor() Volume {
	out := Volume{Type: v.Type, NX: v.NY, NY: v.NX, NZ: v.NZ}
	n := v.Len()
	if n == 0 {
		return out
	}
	// the source voxel at x + NX*(y + NY*z) lands at y + NY*(x + NX*z)
	plane := v.NX * v.NY
	switch v.Type {
	case Uint8:
		out.U8 = make([]uint8, n)
		for z := 0; z < v.NZ; z++ {
			base := z * plane
			for y := 0; y < v.NY; y++ {
				in := base + y*v.NX
				for x := 0; x < v.NX; x++ {
					out.U8[base+x*v.NY+y] = v.U8[in+x]
				}
			}
		}
	case Uint16:
		out.U16 = make([]uint16, n)
		for z := 0; z < v.NZ; z++ {
			base := z * plane
			for y := 0; y < v.NY; y++ {
				in := base + y*v.NX
				for x := 0; x < v.NX; x++ {
					out.U16[base+x*v.NY+y] = v.U16[in+x]
				}
			}
		}
	case Float32:
		out.F32 = make([]float32, n)
		for z := 0; z < v.NZ; z++ {
			base := z * plane
			for y := 0; y < v.NY; y++ {
				in := base + y*v.NX
				for x := 0; x < v.NX; x++ {
					out.F32[base+x*v.NY+y] = v.F32[in+x]
				}
			}
		}
	}
	return out
}

// Equal reports whether two volumes agree in type, extents and every voxel.
func (v Volume) Equal(o Volume) bool {
	if v.Type != o.Type || v.NX != o.NX || v.NY != o.NY || v.NZ != o.NZ {
		return false
	}
	switch v.Type {
	case Uint8:
		for i := range v.U8 {
			if v.U8[i] != o.U8[i] {
				return false
			}
		}
	case Uint16:
		for i := range v.U16 {
			if v.U16[i] != o.U16[i] {
				return false
			}
		}
	case Float32:
		for i := range v.F32 {
			if v.F32[i] != o.F32[i] {
				return false
			}
		}
	}
	return true
}
