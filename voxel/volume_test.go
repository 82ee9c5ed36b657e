package voxel_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/lumenavis/golumen/voxel"
)

// tables for repeatable volumes where adjacent voxels differ
var (
	xdata = []byte{0x01, 0x07, 0xAF, 0xFF, 0x70}
	ydata = []byte{0x33, 0xB2, 0x77, 0xD0, 0x4F}
	zdata = []byte{0x5C, 0x89, 0x40, 0x13, 0xCA}
)

func patternU16(nx, ny, nz int) []uint16 {
	buf := make([]uint16, nx*ny*nz)
	i := 0
	for z := 0; z < nz; z++ {
		vz := zdata[z%len(zdata)]
		for y := 0; y < ny; y++ {
			vy := ydata[y%len(ydata)]
			for x := 0; x < nx; x++ {
				buf[i] = uint16(xdata[x%len(xdata)]^vy^vz) << 4
				i++
			}
		}
	}
	return buf
}

func TestNewVolumeChecksLength(t *testing.T) {
	_, err := voxel.NewUint8(4, 4, 2, make([]uint8, 31))
	if err == nil {
		t.Error("31 voxels accepted for a (4,4,2) volume")
	}
	_, err = voxel.NewUint16(2, 2, 2, make([]uint16, 8))
	if err != nil {
		t.Errorf("valid (2,2,2) volume rejected: %v", err)
	}
	_, err = voxel.NewFloat32(-1, 4, 4, nil)
	if err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestZeros(t *testing.T) {
	v := voxel.Zeros(voxel.Uint16, 3, 4, 5)
	if v.Len() != 60 {
		t.Errorf("Len() = %d, want 60", v.Len())
	}
	if v.Empty() {
		t.Error("60-voxel volume reports empty")
	}
	for i, s := range v.U16 {
		if s != 0 {
			t.Fatalf("voxel %d = %d, want 0", i, s)
		}
	}
	if !(voxel.Volume{}).Empty() {
		t.Error("zero-value volume does not report empty")
	}
}

func TestRowMajorSwapsFirstTwoAxes(t *testing.T) {
	// 2x3x2, values encode their own coordinates
	data := make([]uint8, 2*3*2)
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				data[x+2*(y+3*z)] = uint8(100*x + 10*y + z)
			}
		}
	}
	v, err := voxel.NewUint8(2, 3, 2, data)
	if err != nil {
		t.Fatal(err)
	}
	rm := v.RowMajor()
	if rm.NX != 3 || rm.NY != 2 || rm.NZ != 2 {
		t.Fatalf("RowMajor dims (%d,%d,%d), want (3,2,2)", rm.NX, rm.NY, rm.NZ)
	}
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				got := rm.U8[y+3*(x+2*z)]
				want := uint8(100*x + 10*y + z)
				if got != want {
					t.Errorf("rm(%d,%d,%d) = %d, want %d", y, x, z, got, want)
				}
			}
		}
	}
}

func TestRowMajorTwiceIsIdentity(t *testing.T) {
	v, err := voxel.NewUint16(5, 3, 4, patternU16(5, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	back := v.RowMajor().RowMajor()
	if !back.Equal(v) {
		t.Error("two applications of RowMajor did not restore the volume")
	}
}

func TestBytesLittleEndian(t *testing.T) {
	v, err := voxel.NewUint16(2, 1, 1, []uint16{0x1234, 0xABCD})
	if err != nil {
		t.Fatal(err)
	}
	got := v.Bytes()
	want := []byte{0x34, 0x12, 0xCD, 0xAB}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = % X, want % X", got, want)
		}
	}

	f, err := voxel.NewFloat32(1, 1, 1, []float32{1.5})
	if err != nil {
		t.Fatal(err)
	}
	bits := binary.LittleEndian.Uint32(f.Bytes())
	if math.Float32frombits(bits) != 1.5 {
		t.Errorf("float bytes round-tripped to %v, want 1.5", math.Float32frombits(bits))
	}
}

func TestChecksumTracksContent(t *testing.T) {
	a, _ := voxel.NewUint16(4, 4, 2, patternU16(4, 4, 2))
	b, _ := voxel.NewUint16(4, 4, 2, patternU16(4, 4, 2))
	if a.Checksum() != b.Checksum() {
		t.Error("identical volumes have different checksums")
	}
	b.U16[17]++
	if a.Checksum() == b.Checksum() {
		t.Error("differing volumes share a checksum")
	}
}

func TestEqual(t *testing.T) {
	a, _ := voxel.NewUint8(2, 2, 1, []uint8{1, 2, 3, 4})
	b, _ := voxel.NewUint8(2, 2, 1, []uint8{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Error("equal volumes reported unequal")
	}
	c, _ := voxel.NewUint8(4, 1, 1, []uint8{1, 2, 3, 4})
	if a.Equal(c) {
		t.Error("volumes with different extents reported equal")
	}
	b.U8[0] = 9
	if a.Equal(b) {
		t.Error("volumes with different voxels reported equal")
	}
}

func TestStats(t *testing.T) {
	v, err := voxel.NewFloat32(2, 2, 1, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	s, err := v.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("min/max = %v/%v, want 1/4", s.Min, s.Max)
	}
	if s.Mean != 2.5 {
		t.Errorf("mean = %v, want 2.5", s.Mean)
	}
	// sample standard deviation of {1,2,3,4}
	want := math.Sqrt(5.0 / 3.0)
	if math.Abs(s.Stddev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", s.Stddev, want)
	}

	if _, err := (voxel.Volume{}).Stats(); err != voxel.ErrEmptyVolume {
		t.Errorf("Stats on empty volume returned %v, want ErrEmptyVolume", err)
	}
}

func TestDataTypeStrings(t *testing.T) {
	for _, tt := range []struct {
		t voxel.DataType
		s string
		n int
	}{
		{voxel.Uint8, "uint8", 1},
		{voxel.Uint16, "uint16", 2},
		{voxel.Float32, "float32", 4},
	} {
		if tt.t.String() != tt.s {
			t.Errorf("%v.String() = %q, want %q", tt.t, tt.t.String(), tt.s)
		}
		if tt.t.Bytes() != tt.n {
			t.Errorf("%v.Bytes() = %d, want %d", tt.t, tt.t.Bytes(), tt.n)
		}
		parsed, err := voxel.ParseDataType(tt.s)
		if err != nil || parsed != tt.t {
			t.Errorf("ParseDataType(%q) = %v, %v", tt.s, parsed, err)
		}
	}
	if voxel.Invalid.Valid() {
		t.Error("Invalid reports Valid")
	}
	if _, err := voxel.ParseDataType("int64"); err == nil {
		t.Error("ParseDataType accepted int64")
	}
}
