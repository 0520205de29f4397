package main

import (
	"context"
	"fmt"
	"os"

	"github.com/eaugeas/bstree/config"
	errs "github.com/eaugeas/bstree/errors"
	"github.com/eaugeas/bstree/logs"
	"github.com/pkg/errors"
)

func main() {
	cfg := &Config{}
	parser, err := config.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := parser.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		parser.Usage()
		os.Exit(2)
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.log.Level,
		Output: os.Stderr,
	})

	ctx := context.Background()
	if err := run(ctx, logger, cfg, os.Stdout); err != nil {
		if e, ok := errors.Cause(err).(*errs.Error); ok {
			logger.Error(ctx, err.Error(), e)
		} else {
			logger.Error(ctx, err.Error(), nil)
		}
		os.Exit(1)
	}
}
