package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	return viewFiles(cfg, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	doc, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	return writeDoc(cfg.MainConfig, w, doc)
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Document) error {
	if cfg.Y {
		return writeYAML(doc, w)
	}
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
