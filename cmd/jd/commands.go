package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "i",
			Aliases:     []string{"indent"},
			Description: "indent width for pretty output (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(width)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jd").
		WithSynopsis("jd [opts] command [opts]").
		WithDescription("jd is a tool for working with json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse json files and re-render them").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <keypath> [files]").
		WithDescription("get document elements from files by dotted key path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name: "loopEvery",
		Type: cli.FuncOpt(cfg.mkLoopEvery()),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)

	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b or diff -loop <cmd>").
		WithDescription("diff json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
