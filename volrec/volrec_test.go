package volrec_test

import (
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/lumenavis/golumen/volrec"
	"github.com/lumenavis/golumen/voxel"
)

func xorVol(t *testing.T, tag voxel.DataType, nx, ny, nz int) voxel.Volume {
	t.Helper()
	vol := voxel.Zeros(tag, nx, ny, nz)
	i := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				v := x ^ y ^ z
				switch tag {
				case voxel.Uint8:
					vol.U8[i] = uint8(v)
				case voxel.Uint16:
					vol.U16[i] = uint16(v)
				case voxel.Float32:
					vol.F32[i] = float32(v)
				}
				i++
			}
		}
	}
	return vol
}

func TestSaveDatedIncrementingFilenames(t *testing.T) {
	rec := &volrec.Recorder{Root: t.TempDir(), Prefix: "vol"}
	vol := xorVol(t, voxel.Uint8, 4, 4, 2)

	p0, err := rec.Save(vol, 0, 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	p1, err := rec.Save(vol, 0, 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	day := time.Now().Format("2006-01-02")
	if want := path.Join(rec.Root, day, "vol000000.fits"); p0 != want {
		t.Errorf("expected first file %s, got %s", want, p0)
	}
	if want := path.Join(rec.Root, day, "vol000001.fits"); p1 != want {
		t.Errorf("expected second file %s, got %s", want, p1)
	}
	for _, p := range []string{p0, p1} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
}

func TestIncrResumesAfterExistingFiles(t *testing.T) {
	root := t.TempDir()
	rec := &volrec.Recorder{Root: root, Prefix: "vol"}
	vol := xorVol(t, voxel.Uint8, 4, 4, 2)
	for i := 0; i < 2; i++ {
		if _, err := rec.Save(vol, 0, i); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	fresh := &volrec.Recorder{Root: root, Prefix: "vol"}
	fresh.Incr()
	p, err := fresh.Save(vol, 0, 2)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(p, "vol000002.fits") {
		t.Errorf("expected the fresh recorder to continue at 000002, got %s", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rec := &volrec.Recorder{Root: t.TempDir(), Prefix: "rt"}
	for _, tag := range []voxel.DataType{voxel.Uint8, voxel.Uint16, voxel.Float32} {
		vol := xorVol(t, tag, 8, 6, 4)
		// extreme values exercise the shifted int16 representation
		switch tag {
		case voxel.Uint8:
			vol.U8[0] = 255
		case voxel.Uint16:
			vol.U16[0] = 65535
			vol.U16[1] = 0
		case voxel.Float32:
			vol.F32[0] = -3.25
		}
		p, err := rec.Save(vol, 2, 5)
		if err != nil {
			t.Fatalf("%v: save: %v", tag, err)
		}
		got, meta, err := volrec.Load(p)
		if err != nil {
			t.Fatalf("%v: load: %v", tag, err)
		}
		if !got.Equal(vol) {
			t.Errorf("%v: volume did not survive the round trip", tag)
		}
		if meta.Channel != 2 || meta.Timepoint != 5 {
			t.Errorf("%v: expected meta (2, 5), got (%d, %d)", tag, meta.Channel, meta.Timepoint)
		}
		if meta.Checksum != vol.Checksum() {
			t.Errorf("%v: expected checksum %016x, got %016x", tag, vol.Checksum(), meta.Checksum)
		}
	}
}

func TestLoadDetectsCorruption(t *testing.T) {
	rec := &volrec.Recorder{Root: t.TempDir(), Prefix: "vol"}
	p, err := rec.Save(xorVol(t, voxel.Uint8, 8, 6, 4), 0, 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	buf, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// the header is one 2880 byte block, so the data starts right after it;
	// flip the low byte of the second voxel
	buf[2880+3] ^= 0xFF
	if err := os.WriteFile(p, buf, 0666); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	_, _, err = volrec.Load(p)
	if err == nil {
		t.Fatal("expected a checksum error from the corrupted file")
	}
	if !strings.Contains(err.Error(), "checksum") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSaveRejectsEmptyVolume(t *testing.T) {
	rec := &volrec.Recorder{Root: t.TempDir(), Prefix: "vol"}
	if _, err := rec.Save(voxel.Volume{}, 0, 0); err == nil {
		t.Error("expected an error saving an empty volume")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := volrec.Load(path.Join(t.TempDir(), "nope.fits")); err == nil {
		t.Error("expected an error loading a missing file")
	}
}
