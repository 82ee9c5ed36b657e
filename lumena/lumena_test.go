package lumena_test

import (
	"testing"

	"github.com/lumenavis/golumen/lumena"
)

const testVersion = "Lumena 5.2.0"

// startSim brings up a simulator with one application and a client
// attached to it.  Both are torn down when the test ends.
func startSim(t *testing.T, addr string, id int) (*lumena.Sim, *lumena.SimApp, *lumena.Client) {
	t.Helper()
	sim := lumena.NewSim(addr)
	app := sim.AddApplication(id, testVersion)
	if err := sim.Start(); err != nil {
		t.Fatalf("sim start: %v", err)
	}
	c, err := lumena.Dial(addr)
	if err != nil {
		sim.Stop()
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
		sim.Stop()
	})
	return sim, app, c
}

func xorBytes(nx, ny, nz int) []uint8 {
	out := make([]uint8, nx*ny*nz)
	i := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				out[i] = uint8(x ^ y ^ z)
				i++
			}
		}
	}
	return out
}

func xorShorts(nx, ny, nz int) []uint16 {
	out := make([]uint16, nx*ny*nz)
	i := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				out[i] = uint16(x ^ y ^ z)
				i++
			}
		}
	}
	return out
}

func xorFloats(nx, ny, nz int) []float32 {
	out := make([]float32, nx*ny*nz)
	i := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				out[i] = float32(x ^ y ^ z)
				i++
			}
		}
	}
	return out
}
