package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/signadot/jsondoc/docdiff"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		a, err := getDocFile(cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		b, err := getDocFile(cc, args[1])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, a, b)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}

	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	i := 0
	last := ir.New()
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	for {
		if i == cfg.LoopLim {
			break
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		next, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		if _, err := diffInputs(cfg, cc, last, next); err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		last = next
		<-ticker.C
		i++
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Document) (bool, error) {
	d := docdiff.Diff(a, b)
	if d == nil {
		return false, nil
	}
	if err := writeDoc(cfg.MainConfig, cc.Out, d); err != nil {
		return false, err
	}
	return true, nil
}
