package connector_test

import (
	"strings"
	"testing"

	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/voxel"
)

func TestVolumeRoundTripPerType(t *testing.T) {
	_, app, c := startHost(t, "localhost:7509")
	conn := newConnector(t, c, 0)

	for _, tag := range []voxel.DataType{voxel.Uint8, voxel.Uint16, voxel.Float32} {
		app.CreateDataSet(tag, 8, 6, 4, 2, 1)
		want := xorVolume(t, tag, 8, 6, 4)
		if err := conn.SetDataVolume(want, 1, 0); err != nil {
			t.Fatalf("%v: write: %v", tag, err)
		}
		got, err := conn.GetDataVolume(1, 0)
		if err != nil {
			t.Fatalf("%v: read: %v", tag, err)
		}
		if !got.Equal(want) {
			t.Errorf("%v: volume did not survive the round trip", tag)
		}
		// The untouched channel stays zero.
		other, err := conn.GetDataVolume(0, 0)
		if err != nil {
			t.Fatalf("%v: read channel 0: %v", tag, err)
		}
		if !other.Equal(voxel.Zeros(tag, 8, 6, 4)) {
			t.Errorf("%v: write leaked into another channel", tag)
		}
	}
}

func TestWorkedExampleBaseOne(t *testing.T) {
	sim, app, c := startHost(t, "localhost:7510")
	app.CreateDataSet(voxel.Uint16, 64, 64, 10, 3, 2)
	conn := newConnector(t, c, 1)

	want := xorVolume(t, voxel.Uint16, 64, 64, 10)
	if err := conn.SetDataVolume(want, 1, 1); err != nil {
		t.Fatalf("write at channel 1, timepoint 1: %v", err)
	}
	got, err := conn.GetDataVolume(1, 1)
	if err != nil {
		t.Fatalf("read at channel 1, timepoint 1: %v", err)
	}
	if !got.Equal(want) {
		t.Error("volume did not survive the round trip")
	}

	writes := sim.VolumeWrites()
	err = conn.SetDataVolume(want, 5, 1)
	if err == nil {
		t.Fatal("expected a bounds error for channel 5 of 3")
	}
	if !strings.Contains(err.Error(), "channel 5 outside [1, 3]") {
		t.Errorf("unexpected bounds error %v", err)
	}
	if sim.VolumeWrites() != writes {
		t.Error("the rejected write reached the host")
	}
}

func TestBoundsErrorsIssueNoDataCall(t *testing.T) {
	sim, app, c := startHost(t, "localhost:7511")
	app.CreateDataSet(voxel.Uint8, 4, 4, 2, 2, 2)
	conn := newConnector(t, c, 0)
	vol := voxel.Zeros(voxel.Uint8, 4, 4, 2)

	reads, writes := sim.VolumeReads(), sim.VolumeWrites()
	cases := []struct{ channel, timepoint int }{
		{2, 0}, {-1, 0}, {0, 2}, {0, -1},
	}
	for _, tc := range cases {
		if _, err := conn.GetDataVolume(tc.channel, tc.timepoint); err == nil {
			t.Errorf("read (%d, %d): expected a bounds error", tc.channel, tc.timepoint)
		}
		if err := conn.SetDataVolume(vol, tc.channel, tc.timepoint); err == nil {
			t.Errorf("write (%d, %d): expected a bounds error", tc.channel, tc.timepoint)
		}
	}
	if sim.VolumeReads() != reads {
		t.Error("a rejected read reached the host")
	}
	if sim.VolumeWrites() != writes {
		t.Error("a rejected write reached the host")
	}
}

func TestTypeMismatchIssuesNoDataCall(t *testing.T) {
	sim, app, c := startHost(t, "localhost:7512")
	app.CreateDataSet(voxel.Uint16, 4, 4, 2, 1, 1)
	conn := newConnector(t, c, 0)

	writes := sim.VolumeWrites()
	err := conn.SetDataVolume(voxel.Zeros(voxel.Float32, 4, 4, 2), 0, 0)
	if err == nil {
		t.Fatal("expected a type mismatch error")
	}
	if !strings.Contains(err.Error(), "does not match dataset type") {
		t.Errorf("unexpected type error %v", err)
	}
	if sim.VolumeWrites() != writes {
		t.Error("the mismatched write reached the host")
	}
}

func TestShapeMismatchIssuesNoDataCall(t *testing.T) {
	sim, app, c := startHost(t, "localhost:7513")
	app.CreateDataSet(voxel.Uint16, 4, 4, 2, 1, 1)
	conn := newConnector(t, c, 0)

	writes := sim.VolumeWrites()
	err := conn.SetDataVolume(voxel.Zeros(voxel.Uint16, 4, 2, 4), 0, 0)
	if err == nil {
		t.Fatal("expected a shape mismatch error")
	}
	if !strings.Contains(err.Error(), "does not match dataset extents") {
		t.Errorf("unexpected shape error %v", err)
	}
	if sim.VolumeWrites() != writes {
		t.Error("the mismatched write reached the host")
	}
}

func TestRowMajorReadMatchesPermutation(t *testing.T) {
	_, app, c := startHost(t, "localhost:7514")
	app.CreateDataSet(voxel.Float32, 8, 6, 4, 1, 1)
	conn := newConnector(t, c, 0)

	want := xorVolume(t, voxel.Float32, 8, 6, 4)
	if err := conn.SetDataVolume(want, 0, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	direct, err := conn.GetDataVolume(0, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	rm, err := conn.GetDataVolumeRM(0, 0)
	if err != nil {
		t.Fatalf("row-major read: %v", err)
	}
	if rm.NX != 6 || rm.NY != 8 || rm.NZ != 4 {
		t.Errorf("expected permuted dims (6, 8, 4), got (%d, %d, %d)", rm.NX, rm.NY, rm.NZ)
	}
	if !rm.Equal(direct.RowMajor()) {
		t.Error("row-major read disagrees with permuting the direct read")
	}
}

func TestDeadConnectionIsSilent(t *testing.T) {
	sim := lumena.NewSim("localhost:7515")
	app := sim.AddApplication(0, hostVersion)
	app.CreateDataSet(voxel.Uint16, 4, 4, 2, 1, 1)
	if err := sim.Start(); err != nil {
		t.Fatalf("sim start: %v", err)
	}
	c, err := lumena.Dial("localhost:7515")
	if err != nil {
		sim.Stop()
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()
	conn := newConnector(t, c, 0)
	sim.Stop()

	if conn.IsAlive() {
		t.Fatal("expected the host to be dead")
	}
	vol, err := conn.GetDataVolume(0, 0)
	if err != nil {
		t.Errorf("dead read: expected nil error, got %v", err)
	}
	if !vol.Empty() {
		t.Error("expected an empty volume from a dead host")
	}
	rm, err := conn.GetDataVolumeRM(0, 0)
	if err != nil {
		t.Errorf("dead row-major read: expected nil error, got %v", err)
	}
	if !rm.Empty() {
		t.Error("expected an empty row-major volume from a dead host")
	}
	if err := conn.SetDataVolume(voxel.Zeros(voxel.Uint16, 4, 4, 2), 0, 0); err != nil {
		t.Errorf("dead write: expected nil error, got %v", err)
	}
	if _, err := conn.DataSetSize(); err != lumena.ErrNotAttached {
		t.Errorf("expected ErrNotAttached, got %v", err)
	}
}

func TestMissingDataSetIsSilent(t *testing.T) {
	sim, _, c := startHost(t, "localhost:7516")
	conn := newConnector(t, c, 0)

	vol, err := conn.GetDataVolume(0, 0)
	if err != nil {
		t.Errorf("read without dataset: expected nil error, got %v", err)
	}
	if !vol.Empty() {
		t.Error("expected an empty volume without a dataset")
	}
	if err := conn.SetDataVolume(voxel.Zeros(voxel.Uint8, 4, 4, 2), 0, 0); err != nil {
		t.Errorf("write without dataset: expected nil error, got %v", err)
	}
	if sim.VolumeReads() != 0 || sim.VolumeWrites() != 0 {
		t.Error("a data call reached the host without a dataset")
	}
}

func TestEmptyDataSetIsSilent(t *testing.T) {
	sim, app, c := startHost(t, "localhost:7517")
	app.CreateDataSet(voxel.Uint16, 0, 0, 0, 0, 0)
	conn := newConnector(t, c, 0)

	vol, err := conn.GetDataVolume(0, 0)
	if err != nil {
		t.Errorf("read from empty dataset: expected nil error, got %v", err)
	}
	if !vol.Empty() {
		t.Error("expected an empty volume from an empty dataset")
	}
	if err := conn.SetDataVolume(voxel.Zeros(voxel.Uint16, 4, 4, 2), 0, 0); err != nil {
		t.Errorf("write to empty dataset: expected nil error, got %v", err)
	}
	if sim.VolumeReads() != 0 || sim.VolumeWrites() != 0 {
		t.Error("a data call reached the host for an empty dataset")
	}
}

func TestGetDataVolumeFromExplicitHandle(t *testing.T) {
	_, app, c := startHost(t, "localhost:7518")
	app.CreateDataSet(voxel.Uint8, 4, 4, 2, 1, 1)
	conn := newConnector(t, c, 0)

	want := xorVolume(t, voxel.Uint8, 4, 4, 2)
	if err := conn.SetDataVolume(want, 0, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	first, err := conn.App().DataSet()
	if err != nil {
		t.Fatalf("dataset proxy: %v", err)
	}

	// Creating a second dataset makes it active; the explicit handle
	// still reaches the first one.
	if _, err := conn.CreateDataSet(voxel.Uint16, 2, 2, 2, 1, 1, [3]float64{1, 1, 1}); err != nil {
		t.Fatalf("create second dataset: %v", err)
	}
	active, err := conn.GetDataVolume(0, 0)
	if err != nil {
		t.Fatalf("read active: %v", err)
	}
	if active.Type != voxel.Uint16 {
		t.Errorf("expected the active dataset to be uint16, got %v", active.Type)
	}
	got, err := conn.GetDataVolumeFrom(first, 0, 0)
	if err != nil {
		t.Fatalf("read explicit handle: %v", err)
	}
	if !got.Equal(want) {
		t.Error("explicit handle read did not return the first dataset's volume")
	}
}
