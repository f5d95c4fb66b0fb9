// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/output"
)

// ActionRunner[T] encapsulates the common action pattern of the analysis
// commands: schema short circuit, loading and analysing the inputs (FetchFn),
// emitting the result and the --exit-code verdict.
type ActionRunner[T any] struct {
	CommandName string
	SchemaType  reflect.Type
	FetchFn     func(context.Context, *cli.Command) (T, error)
	RenderFn    func(io.Writer, T, output.Options, output.Styles)
	// DiffersFn, when set, reports whether a comparison found differences.
	DiffersFn func(T) bool
}

// Run executes the action with the provided context and command.
func (ar *ActionRunner[T]) Run(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("executing %s with args %v", ar.CommandName, cmd.Args().Slice())

	if DumpSchemaIfRequested(cmd, ar.SchemaType) {
		return nil
	}

	result, err := ar.FetchFn(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", ar.CommandName, err)
	}

	opts := OptionsFromCommand(cmd)
	st := output.NewStyles(opts.Color)
	if err := Emit(cmd, ar.CommandName, result, func(w io.Writer) {
		ar.RenderFn(w, result, opts, st)
	}); err != nil {
		return err
	}

	if ar.DiffersFn != nil && cmd.Bool("exit-code") && ar.DiffersFn(result) {
		return ErrDifferent
	}
	return nil
}

// NewActionRunner creates an ActionRunner. It's a convenience factory that
// reduces boilerplate in individual command files.
func NewActionRunner[T any](
	commandName string,
	fetchFn func(context.Context, *cli.Command) (T, error),
	renderFn func(io.Writer, T, output.Options, output.Styles),
) *ActionRunner[T] {
	return &ActionRunner[T]{
		CommandName: commandName,
		SchemaType:  reflect.TypeFor[T](),
		FetchFn:     fetchFn,
		RenderFn:    renderFn,
	}
}
