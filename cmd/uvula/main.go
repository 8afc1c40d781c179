// Copyright © 2026 Ultimaker B.V.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command uvula unwraps a triangle mesh's UVs and writes the result back out
// as a Wavefront OBJ.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ultimaker/uvula-go/meshio"
	"github.com/ultimaker/uvula-go/unwrap"
)

// debugReport is the shape of the -d/--debug diagnostic dump: a plain,
// human-readable description of what was loaded and produced, independent
// of the slog event stream.
type debugReport struct {
	Path          string `yaml:"path"`
	Vertices      int    `yaml:"vertices"`
	Faces         int    `yaml:"faces"`
	TextureWidth  uint32 `yaml:"texture_width,omitempty"`
	TextureHeight uint32 `yaml:"texture_height,omitempty"`
	Outputfile    string `yaml:"outputfile,omitempty"`
}

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("uvula", flag.ContinueOnError)
	var outputfile string
	var debug bool
	fs.StringVar(&outputfile, "o", "", "write the unwrapped mesh to this OBJ file")
	fs.StringVar(&outputfile, "outputfile", "", "write the unwrapped mesh to this OBJ file")
	fs.BoolVar(&debug, "d", false, "enable debug logging")
	fs.BoolVar(&debug, "debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: uvula [-o outputfile] [-d] <filepath>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	path := fs.Arg(0)

	slog.Debug("uvula starting", "version", version, "path", path, "outputfile", outputfile)

	f, err := os.Open(path)
	if err != nil {
		slog.Error("could not open mesh file", "path", path, "error", err)
		return 1
	}
	defer f.Close()

	m, err := meshio.Load(f)
	if err != nil {
		slog.Error("could not load mesh", "path", path, "error", err)
		return 1
	}
	slog.Info("Processing (unnamed) mesh", "vertices", len(m.Vertices), "faces", len(m.Faces))
	report := debugReport{Path: path, Vertices: len(m.Vertices), Faces: len(m.Faces), Outputfile: outputfile}

	uvs, texW, texH, ok := unwrap.Unwrap(m.Vertices, m.Faces)
	if !ok {
		slog.Error("unwrap failed", "path", path)
		return 1
	}
	slog.Info("unwrap complete", "texture_width", texW, "texture_height", texH)
	report.TextureWidth, report.TextureHeight = texW, texH

	if debug {
		dump, err := yaml.Marshal(report)
		if err != nil {
			slog.Warn("could not render debug report", "error", err)
		} else {
			fmt.Fprint(os.Stderr, string(dump))
		}
	}

	if outputfile == "" {
		return 0
	}

	m.UV = uvs
	out, err := os.Create(outputfile)
	if err != nil {
		slog.Error("could not create output file", "path", outputfile, "error", err)
		return 1
	}
	defer out.Close()

	if err := meshio.Save(out, m, uvs); err != nil {
		slog.Error("could not write unwrapped mesh", "path", outputfile, "error", err)
		return 1
	}
	slog.Debug("wrote unwrapped mesh", "path", outputfile)
	return 0
}
