package main

import (
	"context"
	"fmt"
	"io"

	"github.com/eaugeas/bstree/container/tree"
	"github.com/eaugeas/bstree/logs"
	"github.com/pkg/errors"
)

func run(ctx context.Context, logger logs.Logger, cfg *Config, w io.Writer) error {
	t := tree.New[int]()
	insert, find := t.Insert, t.Find
	if cfg.tree.Mode == modeRecursive {
		insert, find = t.InsertRecursively, t.FindRecursively
	}

	for _, v := range cfg.tree.Values {
		insert(v)
		logger.Debug(ctx, "insert", logs.MapFields{"value": v, "mode": cfg.tree.Mode})
	}

	logger.Info(ctx, "tree built", logs.MapFields{
		"len":    t.Len(),
		"height": t.Height(),
	})

	out := &reportWriter{w: w}

	for _, v := range cfg.tree.Find {
		n := find(v)
		logger.Debug(ctx, "find", logs.MapFields{"value": v, "found": n != nil})
		if n == nil {
			out.printf("find %d: not found\n", v)
		} else {
			out.printf("find %d: found\n", v)
		}
	}

	for _, v := range cfg.tree.Remove {
		n := t.Remove(v)
		logger.Debug(ctx, "remove", logs.MapFields{"value": v, "removed": n != nil})
		if n == nil {
			out.printf("remove %d: not found\n", v)
		} else {
			out.printf("remove %d: node now holds %d\n", v, n.Value)
		}
	}

	out.printf("len: %d\n", t.Len())
	out.printf("pre-order: %v\n", t.DFSPreOrder())
	out.printf("in-order: %v\n", t.DFSInOrder())
	out.printf("post-order: %v\n", t.DFSPostOrder())
	out.printf("level-order: %v\n", t.BFS())
	out.printf("balanced: %t\n", t.IsBalanced())

	if v, ok := t.FindSecondHighest(); ok {
		out.printf("second-highest: %d\n", v)
	} else {
		out.printf("second-highest: none\n")
	}

	return errors.Wrap(out.err, "failed to write report")
}

// reportWriter keeps the first error returned by w and ignores
// any writes after it
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintf(r.w, format, args...)
}
