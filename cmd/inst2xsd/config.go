package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/inst2xsd"
)

// settings holds every run setting. The config file fills it first and
// flags given on the command line override it.
type settings struct {
	Design        string `yaml:"design"`
	Enumerations  string `yaml:"enumerations"`
	SimpleContent string `yaml:"simpleContent"`
	Particles     string `yaml:"particles"`
	OutDir        string `yaml:"outDir"`
	Report        string `yaml:"report"`
	Workers       int    `yaml:"workers"`
	Verify        bool   `yaml:"verify"`
}

func defaultSettings() settings {
	return settings{
		Design:        "rd",
		Enumerations:  strconv.Itoa(inst2xsd.DefaultMaxDistinct),
		SimpleContent: "smart",
		Particles:     "auto",
		OutDir:        ".",
		Report:        "text",
	}
}

func (s *settings) bind(fs *flag.FlagSet) {
	fs.StringVar(&s.Design, "design", s.Design, "schema design: rd (russian doll), ss (salami slice) or vb (venetian blind)")
	fs.StringVar(&s.Enumerations, "enumerations", s.Enumerations, "never, or the max distinct values kept as an enumeration")
	fs.StringVar(&s.SimpleContent, "simple-content", s.SimpleContent, "smart (narrowest builtin) or string")
	fs.StringVar(&s.Particles, "particles", s.Particles, "auto (sequence when ordered) or choice")
	fs.StringVar(&s.OutDir, "outdir", s.OutDir, "directory the schema documents are written to")
	fs.StringVar(&s.Report, "report", s.Report, "report format: text or json")
	fs.IntVar(&s.Workers, "workers", s.Workers, "documents scanned in parallel (0 uses GOMAXPROCS)")
	fs.BoolVar(&s.Verify, "verify", s.Verify, "validate every input against the generated schemas")
}

// loadConfig reads a YAML config file. Unknown keys are rejected.
func loadConfig(path string) (settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// override copies the flags that were set explicitly from flags into s.
func (s *settings) override(fs *flag.FlagSet, flags settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "design":
			s.Design = flags.Design
		case "enumerations":
			s.Enumerations = flags.Enumerations
		case "simple-content":
			s.SimpleContent = flags.SimpleContent
		case "particles":
			s.Particles = flags.Particles
		case "outdir":
			s.OutDir = flags.OutDir
		case "report":
			s.Report = flags.Report
		case "workers":
			s.Workers = flags.Workers
		case "verify":
			s.Verify = flags.Verify
		}
	})
}

var designAliases = map[string]string{
	"rd": "russian-doll",
	"ss": "salami-slice",
	"vb": "venetian-blind",
}

func (s settings) options() (inst2xsd.Options, error) {
	opts := inst2xsd.NewOptions().WithWorkers(s.Workers)

	name := strings.ToLower(s.Design)
	if full, ok := designAliases[name]; ok {
		name = full
	}
	design, err := inst2xsd.ParseDesign(name)
	if err != nil {
		return opts, err
	}
	opts = opts.WithDesign(design)

	switch e := strings.ToLower(s.Enumerations); e {
	case "never":
		opts = opts.WithEnumerations(inst2xsd.Never())
	default:
		n, err := strconv.Atoi(e)
		if err != nil || n < 1 {
			return opts, fmt.Errorf("invalid enumerations %q: want never or a positive number", s.Enumerations)
		}
		opts = opts.WithEnumerations(inst2xsd.MaxDistinct(n))
	}

	simple, err := inst2xsd.ParseSimpleContent(s.SimpleContent)
	if err != nil {
		return opts, err
	}
	particles, err := inst2xsd.ParseParticles(s.Particles)
	if err != nil {
		return opts, err
	}
	opts = opts.WithSimpleContent(simple).WithParticles(particles)

	switch s.Report {
	case "text", "json":
	default:
		return opts, fmt.Errorf("unknown report format %q", s.Report)
	}
	return opts, opts.Validate()
}
