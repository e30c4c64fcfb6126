package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/world"
)

// Report is the outcome of checking one directory of maps.
type Report struct {
	Maps     []string
	Warnings []string
	Err      error
}

func (r Report) OK() bool { return r.Err == nil }

// Check loads every map under dir, builds a world from each and verifies
// that every transition points at an existing map and spawn point.
func Check(fsys fs.FS, dir string) Report {
	maps, names, err := leveldata.LoadAll(fsys, dir)
	if err != nil {
		return Report{Err: err}
	}

	r := Report{Maps: names}
	quiet := log.New(io.Discard, "", 0)
	var errs []error
	for _, name := range names {
		data := maps[name]
		for _, w := range data.Warnings {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s", name, w))
		}
		w, err := world.Build(data, world.Options{Logger: quiet})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		w.Destroy()
	}
	if err := leveldata.ValidateLinks(maps); err != nil {
		errs = append(errs, err)
	}
	r.Err = errors.Join(errs...)
	return r
}

// Print writes a human readable report.
func (r Report) Print(out io.Writer) {
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if r.Err != nil {
		fmt.Fprintf(out, "FAIL: %v\n", r.Err)
		return
	}
	fmt.Fprintf(out, "ok: %d maps %v\n", len(r.Maps), r.Maps)
}
