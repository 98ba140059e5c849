package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/eaugeas/bstree/config"
	"github.com/eaugeas/bstree/container/tree"
	errs "github.com/eaugeas/bstree/errors"
	"github.com/eaugeas/bstree/logs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := newDemoConfig()
	parser, err := config.Generate(cfg.Use(), cfg)
	if err != nil {
		return err
	}

	if err := parser.ParseArgs(args); err != nil {
		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.log.Level,
		Output: stderr,
		Format: cfg.log.Format,
	})

	t := tree.NewOrderedTree[string]()
	for _, v := range cfg.tree.Values {
		ok, err := t.Insert(v)
		if err != nil {
			return errors.Wrapf(err, "failed to insert %q", v)
		}
		logger.Debug(ctx, "insert", logs.MapFields{"value": v, "inserted": ok, "len": t.Len()})
	}

	if err := tree.Fprint(stdout, t); err != nil {
		return errors.Wrap(err, "failed to print tree")
	}

	for _, q := range cfg.tree.Queries {
		found := t.Contains(q)
		logger.Debug(ctx, "contains", logs.MapFields{"value": q, "found": found})
		if _, err := fmt.Fprintf(stdout, "contains %s: %t\n", q, found); err != nil {
			return errors.Wrap(err, "failed to print query")
		}
	}

	for _, r := range cfg.tree.Removes {
		removed := t.Remove(r)
		logger.Debug(ctx, "remove", logs.MapFields{"value": r, "removed": removed, "len": t.Len()})
	}

	if err := tree.Fprint(stdout, t); err != nil {
		return errors.Wrap(err, "failed to print tree")
	}

	logger.Info(ctx, "done", logs.MapFields{"len": t.Len()})
	return nil
}

func main() {
	ctx := logs.WithTraceID(context.Background(), int64(os.Getpid()))

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var perr config.ErrParseFlags
		if errors.As(err, &perr) {
			err = perr.Coded()
		}

		logs.NewLogrus(logs.LogrusLoggerProperties{Level: logrus.ErrorLevel}).Error(ctx, "bstdemo failed",
			logs.MapFields{"err": err.Error()}, asLoggable(err))
		os.Exit(1)
	}
}

func asLoggable(err error) logs.Loggable {
	var e *errs.Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
