package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	"github.com/lumenavis/golumen/lumena"

	yml "gopkg.in/yaml.v2"
)

var (
	// Version is the version number.  Typically injected via ldflags with git build
	Version = "1"

	// ConfigFileName is what it sounds like
	ConfigFileName = "lumenactl.yml"
	k              = koanf.New(".")
)

func setupconfig() {
	k.Load(structs.Provider(Config{
		Addr:   lumena.DefaultAddress,
		App:    0,
		Base:   0,
		Root:   "volumes",
		Prefix: "vol"}, "koanf"), nil)
	if err := k.Load(file.Provider(ConfigFileName), yaml.Parser()); err != nil {
		errtxt := err.Error()
		if !strings.Contains(errtxt, "no such") { // file missing, who cares
			log.Fatalf("error loading config: %v", err)
		}
	}
}

func root() {
	str := `lumenactl drives a running Lumena visualization host from the command line.
Volumes pulled from the host are recorded as FITS files and can be pushed
back later, to the same instance or a different one.

Usage:
	lumenactl <command> [args]

Commands:
	instances
	info
	pull <channel> <timepoint>
	push <file> <channel> <timepoint>
	launch
	help
	mkconf
	conf
	version`
	fmt.Println(str)
}

func help() {
	str := `lumenactl is amenable to configuration via its .yaml file.  For a primer on YAML, see
https://yaml.org/start.html

Without a configuration the defaults connect to ` + lumena.DefaultAddress + `
and attach to application 0 with zero based indices.

Channel and timepoint arguments are interpreted in the configured indexing
base (Base: 0 or 1).  With Base: 1 the first channel is channel 1.

Commands:
- instances
	> list the application IDs registered at the host, with their versions
- info
	> print the attached application's version, dataset geometry and unit
- pull <channel> <timepoint>
	> read one volume from the host and record it under Root with an
	  incrementing filename in a yyyy-mm-dd subfolder
- push <file> <channel> <timepoint>
	> load a recorded volume and write it to the host
- launch
	> start the host executable (LaunchPath, $LUMENA_EXE or a standard
	  install location) and wait until its remote interface answers`
	fmt.Println(str)
}

func mkconf() {
	c := Config{}
	err := k.Unmarshal("", &c)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(ConfigFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	err = yml.NewEncoder(f).Encode(c)
	if err != nil {
		log.Fatal(err)
	}
}

func printconf() {
	c := Config{}
	k.Unmarshal("", &c)
	err := yml.NewEncoder(os.Stdout).Encode(c)
	if err != nil {
		log.Fatal(err)
	}
}

func pversion() {
	fmt.Printf("lumenactl version %v\n", Version)
}

func main() {
	var cmd string
	args := os.Args
	if len(args) == 1 {
		root()
		return
	}
	setupconfig()
	cmd = args[1]
	cmd = strings.ToLower(cmd)
	switch cmd {
	case "help":
		help()
		return
	case "mkconf":
		mkconf()
		return
	case "conf":
		printconf()
		return
	case "version":
		pversion()
		return
	case "instances":
		instances()
		return
	case "info":
		info()
		return
	case "pull":
		pull(args[2:])
		return
	case "push":
		push(args[2:])
		return
	case "launch":
		launch()
		return
	default:
		log.Fatal("unknown command")
	}
}
