package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

type callFunc func(ctx context.Context, c *lbs.Client, opts lbs.Params) (*lbs.Envelope, error)

// run вызывает сервис и печатает ответ
func run(cmd *cobra.Command, opts *GlobalOptions, call callFunc) error {
	client, err := opts.client()
	if err != nil {
		return err
	}

	env, err := call(cmd.Context(), client, opts.params())
	if err != nil {
		return err
	}

	return printEnvelope(cmd, env, opts.Raw)
}

func printEnvelope(cmd *cobra.Command, env *lbs.Envelope, raw bool) error {
	data := env.Bytes()
	if !raw {
		result, err := env.RawResult()
		if err != nil {
			return err
		}
		data = result
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	out.WriteByte('\n')

	_, err := cmd.OutOrStdout().Write(out.Bytes())
	return err
}
