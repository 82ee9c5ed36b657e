package lumena_test

import (
	"testing"

	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/voxel"
)

func TestDataSetProxies(t *testing.T) {
	_, simApp, c := startSim(t, "localhost:7474", 0)
	simApp.CreateDataSet(voxel.Uint16, 8, 6, 4, 2, 3)
	simApp.SetExtends([3]float32{0, 0, 0}, [3]float32{4, 3, 2})

	app, err := c.GetApplication(0)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	ds, err := app.DataSet()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if ds == nil {
		t.Fatal("expected an active dataset")
	}
	dt, err := ds.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if dt != voxel.Uint16 {
		t.Errorf("expected uint16 dataset, got %v", dt)
	}
	sz, err := ds.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	want := lumena.Size{X: 8, Y: 6, Z: 4, C: 2, T: 3}
	if sz != want {
		t.Errorf("expected size %+v, got %+v", want, sz)
	}
	ext, err := ds.Extends()
	if err != nil {
		t.Fatalf("extends: %v", err)
	}
	if ext.Max != [3]float32{4, 3, 2} {
		t.Errorf("expected max extent {4 3 2}, got %v", ext.Max)
	}
	unit, err := ds.Unit()
	if err != nil {
		t.Fatalf("unit: %v", err)
	}
	if unit != "um" {
		t.Errorf("expected unit um, got %q", unit)
	}
	stamp, err := ds.Timepoint(0)
	if err != nil {
		t.Fatalf("timepoint: %v", err)
	}
	if stamp != "2024-01-01 12:00:00.000" {
		t.Errorf("unexpected timepoint stamp %q", stamp)
	}
	if _, err := ds.Timepoint(3); err != lumena.CodeIndexRange {
		t.Errorf("expected index range error for timepoint 3, got %v", err)
	}
}

func TestVolumeShortsRoundTrip(t *testing.T) {
	_, simApp, c := startSim(t, "localhost:7475", 0)
	simApp.CreateDataSet(voxel.Uint16, 8, 6, 4, 2, 3)

	app, err := c.GetApplication(0)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	ds, err := app.DataSet()
	if err != nil || ds == nil {
		t.Fatalf("dataset: %v", err)
	}
	data := xorShorts(8, 6, 4)
	if err := ds.SetVolumeShorts(data, 1, 2); err != nil {
		t.Fatalf("set volume: %v", err)
	}
	got, err := ds.VolumeShorts(1, 2)
	if err != nil {
		t.Fatalf("get volume: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("expected %d voxels, got %d", len(data), len(got))
	}
	for i := range got {
		if got[i] != data[i] {
			t.Fatalf("voxel %d: expected %d, got %d", i, data[i], got[i])
		}
	}
	other, err := ds.VolumeShorts(0, 0)
	if err != nil {
		t.Fatalf("get untouched volume: %v", err)
	}
	for i := range other {
		if other[i] != 0 {
			t.Fatalf("untouched slab was written at voxel %d", i)
		}
	}
}

func TestVolumeAccessorChecks(t *testing.T) {
	_, simApp, c := startSim(t, "localhost:7476", 0)
	simApp.CreateDataSet(voxel.Uint16, 8, 6, 4, 2, 3)

	app, err := c.GetApplication(0)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	ds, err := app.DataSet()
	if err != nil || ds == nil {
		t.Fatalf("dataset: %v", err)
	}
	if _, err := ds.VolumeFloats(0, 0); err != lumena.CodeWrongType {
		t.Errorf("expected wrong type error, got %v", err)
	}
	if _, err := ds.VolumeShorts(2, 0); err != lumena.CodeIndexRange {
		t.Errorf("expected index range error for channel 2, got %v", err)
	}
	if _, err := ds.VolumeShorts(0, 3); err != lumena.CodeIndexRange {
		t.Errorf("expected index range error for timepoint 3, got %v", err)
	}
	short := make([]uint16, 8)
	if err := ds.SetVolumeShorts(short, 0, 0); err != lumena.CodeBufferSize {
		t.Errorf("expected buffer size error, got %v", err)
	}
}

func TestCreateDataSetOverWire(t *testing.T) {
	_, _, c := startSim(t, "localhost:7477", 0)

	app, err := c.GetApplication(0)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	ds, err := app.CreateDataSet(voxel.Float32, 4, 4, 2, 1, 1)
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}
	dt, err := ds.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if dt != voxel.Float32 {
		t.Errorf("expected float32 dataset, got %v", dt)
	}
	data := xorFloats(4, 4, 2)
	if err := ds.SetVolumeFloats(data, 0, 0); err != nil {
		t.Fatalf("set volume: %v", err)
	}
	got, err := ds.VolumeFloats(0, 0)
	if err != nil {
		t.Fatalf("get volume: %v", err)
	}
	for i := range got {
		if got[i] != data[i] {
			t.Fatalf("voxel %d: expected %g, got %g", i, data[i], got[i])
		}
	}
	active, err := app.DataSet()
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if active == nil || active.Handle() != ds.Handle() {
		t.Error("created dataset should be active")
	}
	if _, err := app.CreateDataSet(voxel.Float32, 0, 4, 2, 1, 1); err != lumena.CodeBadArgument {
		t.Errorf("expected bad argument error for zero dim, got %v", err)
	}
}

func TestSetDataSetClearsAndRestores(t *testing.T) {
	_, simApp, c := startSim(t, "localhost:7478", 0)
	simApp.CreateDataSet(voxel.Uint8, 4, 4, 4, 1, 1)

	app, err := c.GetApplication(0)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	ds, err := app.DataSet()
	if err != nil || ds == nil {
		t.Fatalf("dataset: %v", err)
	}
	if err := app.SetDataSet(nil); err != nil {
		t.Fatalf("clear dataset: %v", err)
	}
	cleared, err := app.DataSet()
	if err != nil {
		t.Fatalf("dataset after clear: %v", err)
	}
	if cleared != nil {
		t.Error("expected nil dataset after clearing")
	}
	if err := app.SetDataSet(ds); err != nil {
		t.Fatalf("restore dataset: %v", err)
	}
	restored, err := app.DataSet()
	if err != nil {
		t.Fatalf("dataset after restore: %v", err)
	}
	if restored == nil || restored.Handle() != ds.Handle() {
		t.Error("expected the original dataset to be active again")
	}
	// the restored handle still reaches the same storage
	data := xorBytes(4, 4, 4)
	if err := restored.SetVolumeBytes(data, 0, 0); err != nil {
		t.Fatalf("set volume: %v", err)
	}
	got, err := ds.VolumeBytes(0, 0)
	if err != nil {
		t.Fatalf("get volume: %v", err)
	}
	for i := range got {
		if got[i] != data[i] {
			t.Fatalf("voxel %d: expected %d, got %d", i, data[i], got[i])
		}
	}
}
