/*
	Package connector adapts numerical workflows to a running Lumena
	host.  It wraps an application proxy from package lumena with the
	conveniences a computing environment wants: datatype-tagged volume
	transfer with validation, index-base conversion, voxel/world
	coordinate mapping, scene shortcuts and color packing.

	A connector is bound to one application and one indexing base at
	construction:

		c, err := lumena.Dial(lumena.DefaultAddress)
		...
		app, err := c.GetApplication(0)
		...
		conn, err := connector.New(app, 1)
		...
		vol, err := conn.GetDataVolume(1, 1)

	The base (0 or 1) applies uniformly to every index-taking call,
	including channels, timepoints and spot time indices.

	Volume reads and writes follow the host convention for absent
	connections: when the host is gone they are benign no-ops (empty
	read, skipped write) instead of errors.  Bad indices, shapes and
	types are hard errors raised before any remote data call.
*/

package connector

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/blang/semver"

	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/voxel"
)

// MinSupportedVersion is the oldest host release the connector is
// tested against.  New refuses to bind to anything older.
var MinSupportedVersion = semver.MustParse("5.0.0")

// Connector binds one host application to one indexing convention.
type Connector struct {
	app     *lumena.Application
	base    int
	version semver.Version
}

// New builds a connector around an application proxy.  base selects
// the indexing convention (0 or 1) for every index-taking call.  The
// host version is checked once against MinSupportedVersion.
func New(app *lumena.Application, base int) (*Connector, error) {
	if app == nil {
		return nil, errors.New("application is nil")
	}
	if base != 0 && base != 1 {
		return nil, fmt.Errorf("indexing base must be 0 or 1, got %d", base)
	}
	raw, err := app.Version()
	if err != nil {
		return nil, err
	}
	v, err := parseVersion(raw)
	if err != nil {
		return nil, err
	}
	if v.LT(MinSupportedVersion) {
		return nil, fmt.Errorf("host version %s is below the minimum supported %s", v, MinSupportedVersion)
	}
	return &Connector{app: app, base: base, version: v}, nil
}

// parseVersion extracts the semantic version from a host version
// string such as "Lumena 5.2.0".
func parseVersion(s string) (semver.Version, error) {
	for _, f := range strings.Fields(s) {
		if v, err := semver.ParseTolerant(f); err == nil {
			return v, nil
		}
	}
	return semver.Version{}, fmt.Errorf("no version number in %q", s)
}

// App returns the bound application proxy.
func (c *Connector) App() *lumena.Application {
	return c.app
}

// IndexingBase returns the indexing convention fixed at construction.
func (c *Connector) IndexingBase() int {
	return c.base
}

// Version returns the host version parsed at construction.
func (c *Connector) Version() semver.Version {
	return c.version
}

// IsAlive reports whether the host still answers.  Liveness is probed
// per call and never cached.
func (c *Connector) IsAlive() bool {
	return c.app.Ping() == nil
}

// DataSetSize returns the extents of the active dataset.  A zero Size
// with a nil error means the application has no dataset loaded.
func (c *Connector) DataSetSize() (lumena.Size, error) {
	if !c.IsAlive() {
		return lumena.Size{}, lumena.ErrNotAttached
	}
	ds, err := c.app.DataSet()
	if err != nil {
		return lumena.Size{}, err
	}
	if ds == nil {
		return lumena.Size{}, nil
	}
	return ds.Size()
}

// Extends returns the world bounding box of the active dataset.  The
// zero value with a nil error means no dataset is loaded.
func (c *Connector) Extends() (lumena.Extends, error) {
	if !c.IsAlive() {
		return lumena.Extends{}, lumena.ErrNotAttached
	}
	ds, err := c.app.DataSet()
	if err != nil {
		return lumena.Extends{}, err
	}
	if ds == nil {
		return lumena.Extends{}, nil
	}
	return ds.Extends()
}

// VoxelSizes returns the world size of one voxel along x, y and z,
// computed as (max-min)/count per axis.  Zeros with a nil error mean
// the dataset is missing or empty.
func (c *Connector) VoxelSizes() ([3]float64, error) {
	if !c.IsAlive() {
		return [3]float64{}, lumena.ErrNotAttached
	}
	ds, err := c.app.DataSet()
	if err != nil {
		return [3]float64{}, err
	}
	if ds == nil {
		return [3]float64{}, nil
	}
	sz, err := ds.Size()
	if err != nil {
		return [3]float64{}, err
	}
	if sz.X == 0 || sz.Y == 0 || sz.Z == 0 {
		return [3]float64{}, nil
	}
	ext, err := ds.Extends()
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{
		float64(ext.Max[0]-ext.Min[0]) / float64(sz.X),
		float64(ext.Max[1]-ext.Min[1]) / float64(sz.Y),
		float64(ext.Max[2]-ext.Min[2]) / float64(sz.Z),
	}, nil
}

// geometry fetches the pieces both coordinate mappings need.  Unlike
// VoxelSizes it treats a missing or empty dataset as an error, since
// there is no geometry to map through.
func (c *Connector) geometry() ([3]float64, lumena.Extends, error) {
	if !c.IsAlive() {
		return [3]float64{}, lumena.Extends{}, lumena.ErrNotAttached
	}
	ds, err := c.app.DataSet()
	if err != nil {
		return [3]float64{}, lumena.Extends{}, err
	}
	if ds == nil {
		return [3]float64{}, lumena.Extends{}, errors.New("no dataset is loaded")
	}
	sz, err := ds.Size()
	if err != nil {
		return [3]float64{}, lumena.Extends{}, err
	}
	if sz.X == 0 || sz.Y == 0 || sz.Z == 0 {
		return [3]float64{}, lumena.Extends{}, errors.New("the dataset is empty")
	}
	ext, err := ds.Extends()
	if err != nil {
		return [3]float64{}, lumena.Extends{}, err
	}
	vs := [3]float64{
		float64(ext.Max[0]-ext.Min[0]) / float64(sz.X),
		float64(ext.Max[1]-ext.Min[1]) / float64(sz.Y),
		float64(ext.Max[2]-ext.Min[2]) / float64(sz.Z),
	}
	return vs, ext, nil
}

// MapPositionsUnitsToVoxels converts world-unit positions into
// continuous zero-based voxel coordinates of the active dataset.
func (c *Connector) MapPositionsUnitsToVoxels(points [][3]float64) ([][3]float64, error) {
	vs, ext, err := c.geometry()
	if err != nil {
		return nil, err
	}
	out := make([][3]float64, len(points))
	for i, p := range points {
		for a := 0; a < 3; a++ {
			out[i][a] = (p[a] - float64(ext.Min[a])) / vs[a]
		}
	}
	return out, nil
}

// MapPositionsVoxelsToUnits converts continuous zero-based voxel
// coordinates into world-unit positions of the active dataset.
func (c *Connector) MapPositionsVoxelsToUnits(points [][3]float64) ([][3]float64, error) {
	vs, ext, err := c.geometry()
	if err != nil {
		return nil, err
	}
	out := make([][3]float64, len(points))
	for i, p := range points {
		for a := 0; a < 3; a++ {
			out[i][a] = p[a]*vs[a] + float64(ext.Min[a])
		}
	}
	return out, nil
}

// CreateDataSet allocates a dataset in the host with the given voxel
// type, dimensions and world voxel sizes, and makes it active.
func (c *Connector) CreateDataSet(t voxel.DataType, nx, ny, nz, nc, nt int, voxelSizes [3]float64) (*lumena.DataSet, error) {
	if !c.IsAlive() {
		return nil, lumena.ErrNotAttached
	}
	if !t.Valid() {
		return nil, fmt.Errorf("unknown datatype tag %v", t)
	}
	if nx < 1 || ny < 1 || nz < 1 || nc < 1 || nt < 1 {
		return nil, fmt.Errorf("dataset dimensions must be positive, got (%d, %d, %d, %d, %d)", nx, ny, nz, nc, nt)
	}
	for a, v := range voxelSizes {
		if v <= 0 {
			return nil, fmt.Errorf("voxel size along axis %d must be positive, got %g", a, v)
		}
	}
	ds, err := c.app.CreateDataSet(t, nx, ny, nz, nc, nt)
	if err != nil {
		return nil, err
	}
	ext := lumena.Extends{
		Max: [3]float32{
			float32(voxelSizes[0] * float64(nx)),
			float32(voxelSizes[1] * float64(ny)),
			float32(voxelSizes[2] * float64(nz)),
		},
	}
	if err := ds.SetExtends(ext); err != nil {
		return nil, err
	}
	return ds, nil
}

// RGBAVectorToScalar packs an RGBA color with components in [0, 1]
// into the host's little-endian color scalar.
func RGBAVectorToScalar(rgba [4]float64) (uint32, error) {
	var out uint32
	for i, v := range rgba {
		if v < 0 || v > 1 {
			return 0, fmt.Errorf("rgba component %d is %g, outside [0, 1]", i, v)
		}
		out |= uint32(math.Round(v*255)) << (8 * uint(i))
	}
	return out, nil
}

// RGBAScalarToVector unpacks a host color scalar into RGBA components
// in [0, 1].
func RGBAScalarToVector(scalar uint32) [4]float64 {
	var out [4]float64
	for i := range out {
		out[i] = float64((scalar>>(8*uint(i)))&0xff) / 255
	}
	return out
}
