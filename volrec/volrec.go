// Package volrec contains a volume recorder used to automatically save volumes to disk.
//
// Volumes are stored as single-HDU FITS cubes, NAXIS1 = x, with the channel
// and timepoint they were read from and a checksum of the voxel stream in the
// header.  uint16 voxels are written as shifted int16 with a BZERO card so
// external viewers recover the unsigned values; uint8 voxels are widened to
// int16 and the VOXTYPE card records which representation to restore on load.
package volrec

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/astrogo/fitsio"

	"github.com/lumenavis/golumen/voxel"
)

// Meta is the sidecar metadata stored in a recorded volume's FITS header.
type Meta struct {
	// Channel is the channel index the volume was read from.
	Channel int

	// Timepoint is the timepoint index the volume was read from.
	Timepoint int

	// Checksum is the CRC-64/ECMA of the voxel stream.
	Checksum uint64
}

// Recorder records volume sequences with incrementing filenames in yyyy-mm-dd subfolders.  It is not thread safe.
type Recorder struct {
	// counter is the internally incrementing counter
	counter int

	// Root is the root path
	Root string

	// Prefix is the prefix for the filenames
	Prefix string

	// timeFldr is the subfolder with yyyy-mm-dd format.
	timeFldr string

	// Enabled is a flag unused by this struct that allows consumers to disable its use in their code
	Enabled bool
}

// updateFolder checks the current time and updates the folder and timestamp as needed
func (r *Recorder) updateFolder() {
	now := time.Now()
	y, m, d := now.Year(), now.Month(), now.Day()
	r.timeFldr = fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// mkDir makes the folder and returns it
func (r *Recorder) mkDir() (string, error) {
	fldr := path.Join(r.Root, r.timeFldr)
	err := os.MkdirAll(fldr, 0777)
	return fldr, err
}

// Incr updates the filename counter; it scans the folder to do so.  If there is an error, the counter is not incremented
func (r *Recorder) Incr() {
	r.updateFolder()
	dn, _ := r.mkDir()
	files, err := ioutil.ReadDir(dn)
	if err != nil {
		return
	}
	count := 0
	for _, file := range files {
		// skip directories, non-fits, and wrong prefix
		if file.IsDir() {
			continue
		}
		fn := file.Name()
		if !strings.HasSuffix(fn, ".fits") || !strings.HasPrefix(fn, r.Prefix) {
			continue
		}
		// guaranteed match
		bit := strings.Split(fn, r.Prefix)[1]
		bit = bit[:len(bit)-5] // pop fits
		n, err := strconv.Atoi(bit)
		if err != nil {
			return
		}
		if count < n {
			count = n
		}
	}
	r.counter = count + 1
}

// Save encodes vol as a FITS file at the current counter's filename in
// today's subfolder and advances the counter.  It returns the path written.
func (r *Recorder) Save(vol voxel.Volume, channel, timepoint int) (string, error) {
	if vol.Empty() {
		return "", fmt.Errorf("refusing to record an empty volume")
	}
	r.updateFolder()
	fldr, err := r.mkDir()
	if err != nil {
		return "", err
	}
	fn := path.Join(fldr, fmt.Sprintf("%s%06d.fits", r.Prefix, r.counter))
	fid, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	meta := Meta{Channel: channel, Timepoint: timepoint, Checksum: vol.Checksum()}
	err = Encode(fid, vol, meta)
	cerr := fid.Close()
	if err != nil {
		return "", err
	}
	if cerr != nil {
		return "", cerr
	}
	r.Incr()
	return fn, nil
}

// Encode streams vol and its metadata to w as a FITS file.
func Encode(w io.Writer, vol voxel.Volume, meta Meta) error {
	f, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	defer f.Close()

	bitpix := 16
	if vol.Type == voxel.Float32 {
		bitpix = -32
	}
	img := fitsio.NewImage(bitpix, []int{vol.NX, vol.NY, vol.NZ})
	defer img.Close()

	cards := []fitsio.Card{
		{Name: "CHANNEL", Value: meta.Channel, Comment: "channel index"},
		{Name: "TIMEPNT", Value: meta.Timepoint, Comment: "timepoint index"},
		{Name: "VOXTYPE", Value: vol.Type.String(), Comment: "voxel datatype"},
		{Name: "VOXSUM", Value: fmt.Sprintf("%016x", meta.Checksum), Comment: "CRC-64/ECMA of the voxel stream"},
	}
	if vol.Type == voxel.Uint16 {
		cards = append(cards, fitsio.Card{Name: "BZERO", Value: 32768}, fitsio.Card{Name: "BSCALE", Value: 1.0})
	}
	if err := img.Header().Append(cards...); err != nil {
		return err
	}

	switch vol.Type {
	case voxel.Uint8:
		ints := make([]int16, len(vol.U8))
		for i, v := range vol.U8 {
			ints[i] = int16(v)
		}
		err = img.Write(&ints)
	case voxel.Uint16:
		ints := make([]int16, len(vol.U16))
		for i, v := range vol.U16 {
			ints[i] = int16(int32(v) - 32768)
		}
		err = img.Write(&ints)
	case voxel.Float32:
		floats := append([]float32(nil), vol.F32...)
		err = img.Write(&floats)
	default:
		return fmt.Errorf("cannot record a volume with datatype tag %v", vol.Type)
	}
	if err != nil {
		return err
	}
	return f.Write(img)
}

// Decode reads a FITS file produced by Encode and restores the volume and
// its metadata.  The voxel stream is checksummed against the VOXSUM card.
func Decode(r io.Reader) (voxel.Volume, Meta, error) {
	var meta Meta
	f, err := fitsio.Open(r)
	if err != nil {
		return voxel.Volume{}, meta, err
	}
	defer f.Close()

	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return voxel.Volume{}, meta, fmt.Errorf("primary HDU is not an image")
	}
	hdr := img.Header()
	axes := hdr.Axes()
	if len(axes) != 3 {
		return voxel.Volume{}, meta, fmt.Errorf("expected a 3-axis FITS cube, got %d axes", len(axes))
	}
	nx, ny, nz := axes[0], axes[1], axes[2]

	tag, err := cardString(hdr, "VOXTYPE")
	if err != nil {
		return voxel.Volume{}, meta, err
	}
	t, err := voxel.ParseDataType(tag)
	if err != nil {
		return voxel.Volume{}, meta, err
	}
	if meta.Channel, err = cardInt(hdr, "CHANNEL"); err != nil {
		return voxel.Volume{}, meta, err
	}
	if meta.Timepoint, err = cardInt(hdr, "TIMEPNT"); err != nil {
		return voxel.Volume{}, meta, err
	}
	sum, err := cardString(hdr, "VOXSUM")
	if err != nil {
		return voxel.Volume{}, meta, err
	}
	if meta.Checksum, err = strconv.ParseUint(sum, 16, 64); err != nil {
		return voxel.Volume{}, meta, fmt.Errorf("bad VOXSUM card %q: %v", sum, err)
	}

	n := nx * ny * nz
	var vol voxel.Volume
	switch t {
	case voxel.Uint8:
		raw := make([]int16, n)
		if err := img.Read(&raw); err != nil {
			return voxel.Volume{}, meta, err
		}
		data := make([]uint8, n)
		for i, v := range raw {
			data[i] = uint8(v)
		}
		vol, err = voxel.NewUint8(nx, ny, nz, data)
	case voxel.Uint16:
		raw := make([]int16, n)
		if err := img.Read(&raw); err != nil {
			return voxel.Volume{}, meta, err
		}
		data := make([]uint16, n)
		for i, v := range raw {
			data[i] = uint16(int32(v) + 32768)
		}
		vol, err = voxel.NewUint16(nx, ny, nz, data)
	case voxel.Float32:
		data := make([]float32, n)
		if err := img.Read(&data); err != nil {
			return voxel.Volume{}, meta, err
		}
		vol, err = voxel.NewFloat32(nx, ny, nz, data)
	}
	if err != nil {
		return voxel.Volume{}, meta, err
	}
	if got := vol.Checksum(); got != meta.Checksum {
		return voxel.Volume{}, meta, fmt.Errorf("voxel stream checksum %016x does not match the VOXSUM card %016x", got, meta.Checksum)
	}
	return vol, meta, nil
}

// Load reads a recorded volume from disk.
func Load(filename string) (voxel.Volume, Meta, error) {
	fid, err := os.Open(filename)
	if err != nil {
		return voxel.Volume{}, Meta{}, err
	}
	defer fid.Close()
	return Decode(fid)
}

func cardInt(hdr *fitsio.Header, name string) (int, error) {
	c := hdr.Get(name)
	if c == nil {
		return 0, fmt.Errorf("missing %s card", name)
	}
	v, ok := c.Value.(int)
	if !ok {
		return 0, fmt.Errorf("%s card is not an integer", name)
	}
	return v, nil
}

func cardString(hdr *fitsio.Header, name string) (string, error) {
	c := hdr.Get(name)
	if c == nil {
		return "", fmt.Errorf("missing %s card", name)
	}
	v, ok := c.Value.(string)
	if !ok {
		return "", fmt.Errorf("%s card is not a string", name)
	}
	return v, nil
}
