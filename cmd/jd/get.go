package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getDocFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, err := lookupPath(ir.FromDocument(doc), path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := writeValue(cfg.MainConfig, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}

// lookupPath walks a dot separated sequence of object keys and array
// indices from v.
func lookupPath(v *ir.Value, path string) (*ir.Value, error) {
	for _, seg := range strings.Split(path, ".") {
		switch v.Type {
		case ir.ObjectType:
			next := v.Doc.Get(seg)
			if next == nil {
				return nil, fmt.Errorf("no key %q", seg)
			}
			v = next
		case ir.ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v.Values) {
				return nil, fmt.Errorf("no index %q in array of length %d", seg, len(v.Values))
			}
			v = v.Values[i]
		default:
			return nil, fmt.Errorf("cannot descend into %v value with %q", v.Type, seg)
		}
	}
	return v, nil
}

func writeValue(cfg *MainConfig, w io.Writer, v *ir.Value) error {
	if cfg.Y {
		d, err := yaml.Marshal(goValue(v))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Value(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
