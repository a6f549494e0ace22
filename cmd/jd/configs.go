package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsondoc/encode"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	C     bool `cli:"name=c aliases=compact desc='compact output, no whitespace'"`
	Color bool `cli:"name=color desc='encode with color'"`
	Y     bool `cli:"name=y aliases=yaml desc='render output as yaml'"`

	Indent int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) indentOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: indent must be a positive integer, got %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.Pretty(!cfg.C),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Loop      string `cli:"name=loop desc='command to produce documents to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}
