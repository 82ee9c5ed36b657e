// Command lumenasim runs a simulated Lumena host for development and
// testing.  It speaks the same remote interface as the real program, so
// lumenactl and connector based code can be exercised without a license
// or a GPU.  The -id and -rc flags match the ones the launcher passes to
// the real executable, so pointing LUMENA_EXE at lumenasim works too.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-yaml/yaml"

	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/voxel"
)

const defaultVersion = "Lumena 5.2.0"

// DataSetSetup describes the dataset a simulated application starts with.
type DataSetSetup struct {
	// Type is the voxel datatype, uint8, uint16 or float32
	Type string `yaml:"Type"`

	// NX, NY and NZ are the spatial extents in voxels
	NX int `yaml:"NX"`
	NY int `yaml:"NY"`
	NZ int `yaml:"NZ"`

	// NC and NT are the channel and timepoint counts
	NC int `yaml:"NC"`
	NT int `yaml:"NT"`

	// Max is the upper corner of the extents in scene units; the zero
	// value means one unit per voxel
	Max [3]float32 `yaml:"Max"`

	// Fill selects the seeded voxel pattern, "zeros" or "ramp"
	Fill string `yaml:"Fill"`
}

// AppSetup describes one simulated application.
type AppSetup struct {
	// ID is the application ID it registers under
	ID int `yaml:"ID"`

	// Version is the version string reported to clients
	Version string `yaml:"Version"`

	// DataSet, when present, is created at startup
	DataSet *DataSetSetup `yaml:"DataSet"`

	// Spots adds a demo spots item with this many spots
	Spots int `yaml:"Spots"`
}

// Config holds the simulated host's parameters.  It is to be populated
// by a yaml unmarshal call.
type Config struct {
	// Addr is the address to listen at
	Addr string `yaml:"Addr"`

	// Apps is the list of applications to register
	Apps []AppSetup `yaml:"Apps"`
}

// LoadYaml converts a (path to a) yaml file into a Config struct
func LoadYaml(path string) (Config, error) {
	cfg := Config{}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.NewDecoder(f).Decode(&cfg)
	return cfg, err
}

// defaultConfig simulates a host with one application and a modest dataset
func defaultConfig() Config {
	return Config{
		Addr: lumena.DefaultAddress,
		Apps: []AppSetup{{
			ID:      0,
			Version: defaultVersion,
			DataSet: &DataSetSetup{Type: "uint16", NX: 64, NY: 64, NZ: 10, NC: 3, NT: 2, Fill: "ramp"},
			Spots:   4,
		}},
	}
}

func hasApp(c Config, id int) bool {
	for _, a := range c.Apps {
		if a.ID == id {
			return true
		}
	}
	return false
}

// ramp fills a volume with x + y + z + channel + timepoint, wrapped to
// the datatype's range, so every slab is distinguishable by eye.
func ramp(t voxel.DataType, nx, ny, nz, channel, timepoint int) voxel.Volume {
	vol := voxel.Zeros(t, nx, ny, nz)
	i := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				v := x + y + z + channel + timepoint
				switch t {
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

func seedDataSet(app *lumena.SimApp, d DataSetSetup) error {
	t, err := voxel.ParseDataType(d.Type)
	if err != nil {
		return err
	}
	app.CreateDataSet(t, d.NX, d.NY, d.NZ, d.NC, d.NT)
	if d.Max != ([3]float32{}) {
		app.SetExtends([3]float32{}, d.Max)
	}
	switch d.Fill {
	case "", "zeros":
	case "ramp":
		for tp := 0; tp < d.NT; tp++ {
			for ch := 0; ch < d.NC; ch++ {
				if err := app.SeedVolume(ch, tp, ramp(t, d.NX, d.NY, d.NZ, ch, tp)); err != nil {
					return err
				}
			}
		}
	default:
		return fmt.Errorf("unknown fill %q, want zeros or ramp", d.Fill)
	}
	return nil
}

func register(sim *lumena.Sim, as AppSetup) error {
	version := as.Version
	if version == "" {
		version = defaultVersion
	}
	app := sim.AddApplication(as.ID, version)
	if as.DataSet != nil {
		if err := seedDataSet(app, *as.DataSet); err != nil {
			return err
		}
	}
	if as.Spots > 0 {
		pos := make([][3]float32, as.Spots)
		times := make([]int, as.Spots)
		radii := make([]float32, as.Spots)
		for i := range pos {
			f := float32(i)
			pos[i] = [3]float32{f, 2 * f, f / 2}
			times[i] = i % 2
			radii[i] = 0.5
		}
		app.AddSpots("Simulated spots", pos, times, radii)
	}
	return nil
}

func main() {
	var (
		cfgPath = flag.String("config", "lumenasim.yml", "path to the yaml configuration")
		id      = flag.Int("id", -1, "register an extra application under this ID")
		rc      = flag.String("rc", "", "listen address, overrides the configuration")
	)
	flag.Parse()

	cfg, err := LoadYaml(*cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("error loading config: %v", err)
		}
		cfg = defaultConfig()
	}
	if *rc != "" {
		cfg.Addr = *rc
	}
	if cfg.Addr == "" {
		cfg.Addr = lumena.DefaultAddress
	}
	if *id >= 0 && !hasApp(cfg, *id) {
		cfg.Apps = append(cfg.Apps, AppSetup{ID: *id, Version: defaultVersion})
	}

	sim := lumena.NewSim(cfg.Addr)
	for _, as := range cfg.Apps {
		if err := register(sim, as); err != nil {
			log.Fatal(err)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		sim.Stop()
		os.Exit(0)
	}()
	log.Printf("simulated host with %d applications listening at %s", len(cfg.Apps), cfg.Addr)
	log.Fatal(sim.Serve())
}
