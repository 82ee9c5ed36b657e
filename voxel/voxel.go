/*Package voxel holds the volume model shared by the Lumena connector: a
datatype tag mirroring the host's dataset descriptor, and a Volume type that
carries one (channel, timepoint) slab as the host stores it, a flat x-fastest
buffer with (NX, NY, NZ) extents.

A Volume is constructed from a typed slice and validated once:

	vol, err := voxel.NewUint16(64, 64, 10, data)
	if err != nil {
		// len(data) != 64*64*10
	}

After construction the slice matching the tag (U8, U16 or F32) is non-nil and
the other two are nil.
*/
package voxel

import "fmt"

// DataType identifies the numeric representation of a voxel.  The host
// declares exactly one per dataset and the tags are mirrored here.
type DataType uint8

const (
	// Invalid is the zero value and never names a real dataset type.
	Invalid DataType = iota

	// Uint8 is an 8-bit unsigned voxel.
	Uint8

	// Uint16 is a 16-bit unsigned voxel.
	Uint16

	// Float32 is a 32-bit floating point voxel.
	Float32
)

var typeBytes = map[DataType]int{
	Uint8:   1,
	Uint16:  2,
	Float32: 4,
}

// Bytes returns the number of bytes one voxel of this type occupies, or 0
// for a type that is not one of the supported tags.
func (t DataType) Bytes() int {
	return typeBytes[t]
}

// Valid reports whether t is one of the supported tags.
func (t DataType) Valid() bool {
	_, ok := typeBytes[t]
	return ok
}

func (t DataType) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Float32:
		return "float32"
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// ParseDataType converts the string form of a tag ("uint8", "uint16",
// "float32") back to the tag.  Unknown strings are an error.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "uint8":
		return Uint8, nil
	case "uint16":
		return Uint16, nil
	case "float32":
		return Float32, nil
	}
	return Invalid, fmt.Errorf("unknown voxel datatype %q", s)
}
