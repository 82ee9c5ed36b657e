package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/theckman/yacspin"

	"github.com/lumenavis/golumen/connector"
	"github.com/lumenavis/golumen/lumena"
	"github.com/lumenavis/golumen/volrec"
)

// Config holds the connection and recording parameters for lumenactl.
// It is to be populated by a yaml unmarshal call.
type Config struct {
	// Addr is the address the host's remote interface listens at,
	// e.g. localhost:7464
	Addr string `yaml:"Addr"`

	// App is the ID of the application to attach to
	App int `yaml:"App"`

	// Base is the indexing base used on the command line, 0 or 1
	Base int `yaml:"Base"`

	// Root is the folder volumes are recorded under
	Root string `yaml:"Root"`

	// Prefix is the filename prefix for recorded volumes
	Prefix string `yaml:"Prefix"`

	// LaunchPath is the path to the host executable.  Empty means search
	// $LUMENA_EXE, $PATH and the standard install locations
	LaunchPath string `yaml:"LaunchPath"`
}

func config() Config {
	c := Config{}
	if err := k.Unmarshal("", &c); err != nil {
		log.Fatal(err)
	}
	return c
}

// spinner returns a started spinner with msg after it
func spinner(msg string) *yacspin.Spinner {
	cfg := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[14],
		Suffix:            " " + msg,
		StopCharacter:     "✓",
		StopFailCharacter: "✗",
		StopColors:        []string{"fgGreen"},
		StopFailColors:    []string{"fgRed"},
	}
	s, err := yacspin.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	s.Start()
	return s
}

// attach dials the host and wraps the configured application in a connector
func attach(c Config) (*lumena.Client, *connector.Connector, error) {
	s := spinner(fmt.Sprintf("attaching to %s", c.Addr))
	client, err := lumena.Dial(c.Addr)
	if err != nil {
		s.StopFail()
		return nil, nil, err
	}
	app, err := client.GetApplication(c.App)
	if err != nil {
		s.StopFail()
		client.Close()
		return nil, nil, err
	}
	conn, err := connector.New(app, c.Base)
	if err != nil {
		s.StopFail()
		client.Close()
		return nil, nil, err
	}
	s.Stop()
	return client, conn, nil
}

func parseIndex(s, name string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("%s %q is not an integer", name, s)
	}
	return n
}

func instances() {
	c := config()
	client, err := lumena.Dial(c.Addr)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	n, err := client.NumberOfApplications()
	if err != nil {
		log.Fatal(err)
	}
	if n == 0 {
		fmt.Println("no applications registered at", c.Addr)
		return
	}
	for i := 0; i < n; i++ {
		id, err := client.ApplicationID(i)
		if err != nil {
			log.Fatal(err)
		}
		app, err := client.GetApplication(id)
		if err != nil {
			log.Fatal(err)
		}
		v, err := app.Version()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d\t%s\n", id, v)
	}
}

func info() {
	c := config()
	client, conn, err := attach(c)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	fmt.Printf("host version: %s\n", conn.Version())
	sz, err := conn.DataSetSize()
	if err != nil {
		log.Fatal(err)
	}
	if sz == (lumena.Size{}) {
		fmt.Println("no dataset loaded")
		return
	}
	ds, err := conn.App().DataSet()
	if err != nil {
		log.Fatal(err)
	}
	dtype, err := ds.Type()
	if err != nil {
		log.Fatal(err)
	}
	unit, err := ds.Unit()
	if err != nil {
		log.Fatal(err)
	}
	ext, err := conn.Extends()
	if err != nil {
		log.Fatal(err)
	}
	vs, err := conn.VoxelSizes()
	if err != nil {
		log.Fatal(err)
	}
	total := uint64(sz.X*sz.Y*sz.Z*sz.C*sz.T) * uint64(dtype.Bytes())
	fmt.Printf("dataset: %d x %d x %d %s voxels, %d channels, %d timepoints (%s)\n",
		sz.X, sz.Y, sz.Z, dtype, sz.C, sz.T, humanize.Bytes(total))
	fmt.Printf("extents: (%g, %g, %g) to (%g, %g, %g) %s\n",
		ext.Min[0], ext.Min[1], ext.Min[2], ext.Max[0], ext.Max[1], ext.Max[2], unit)
	fmt.Printf("voxel size: %g x %g x %g %s\n", vs[0], vs[1], vs[2], unit)
}

func pull(args []string) {
	if len(args) != 2 {
		log.Fatal("usage: lumenactl pull <channel> <timepoint>")
	}
	channel := parseIndex(args[0], "channel")
	timepoint := parseIndex(args[1], "timepoint")
	c := config()
	client, conn, err := attach(c)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	s := spinner(fmt.Sprintf("pulling channel %d, timepoint %d", channel, timepoint))
	vol, err := conn.GetDataVolume(channel, timepoint)
	if err != nil {
		s.StopFail()
		log.Fatal(err)
	}
	if vol.Empty() {
		s.StopFail()
		log.Fatal("the host returned no voxels; is a dataset loaded?")
	}
	rec := &volrec.Recorder{Root: c.Root, Prefix: c.Prefix, Enabled: true}
	rec.Incr()
	fn, err := rec.Save(vol, channel, timepoint)
	if err != nil {
		s.StopFail()
		log.Fatal(err)
	}
	s.Stop()
	if st, err := vol.Stats(); err == nil {
		fmt.Printf("intensity: min %g, max %g, mean %.4g, stddev %.4g\n", st.Min, st.Max, st.Mean, st.Stddev)
	}
	fmt.Printf("wrote %s (%s)\n", fn, humanize.Bytes(uint64(vol.Len()*vol.Type.Bytes())))
}

func push(args []string) {
	if len(args) != 3 {
		log.Fatal("usage: lumenactl push <file> <channel> <timepoint>")
	}
	vol, meta, err := volrec.Load(args[0])
	if err != nil {
		log.Fatal(err)
	}
	channel := parseIndex(args[1], "channel")
	timepoint := parseIndex(args[2], "timepoint")
	c := config()
	client, conn, err := attach(c)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	s := spinner(fmt.Sprintf("pushing %s to channel %d, timepoint %d", args[0], channel, timepoint))
	if err := conn.SetDataVolume(vol, channel, timepoint); err != nil {
		s.StopFail()
		log.Fatal(err)
	}
	s.Stop()
	fmt.Printf("pushed %s (%s, recorded from channel %d, timepoint %d)\n",
		args[0], humanize.Bytes(uint64(vol.Len()*vol.Type.Bytes())), meta.Channel, meta.Timepoint)
}

func launch() {
	c := config()
	path := c.LaunchPath
	if path == "" {
		var err error
		path, err = lumena.FindExecutable()
		if err != nil {
			log.Fatal(err)
		}
	}
	s := spinner(fmt.Sprintf("launching %s", path))
	client, app, err := lumena.Launch(lumena.LaunchOptions{Path: path, ID: c.App, Addr: c.Addr})
	if err != nil {
		s.StopFail()
		log.Fatal(err)
	}
	defer client.Close()
	v, err := app.Version()
	if err != nil {
		s.StopFail()
		log.Fatal(err)
	}
	s.Stop()
	fmt.Printf("%s answering at %s\n", v, c.Addr)
}
