package cli

import (
	"bytes"
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lyqlplay/internal/logging"
	"github.com/yaklabco/lyqlplay/pkg/fsutil"
)

// output is where a command writes its result: the command's stdout, or a
// buffer that is written atomically to a file on commit.
type output struct {
	path string
	buf  bytes.Buffer
	out  io.Writer
}

func newOutput(cmd *cobra.Command, path string) *output {
	return &output{path: path, out: cmd.OutOrStdout()}
}

// Writer returns the destination for rendered output.
func (o *output) Writer() io.Writer {
	if o.path == "" {
		return o.out
	}
	return &o.buf
}

// Commit writes the buffered output to the file, if one was requested.
// An unchanged file is left alone.
func (o *output) Commit(ctx context.Context) error {
	if o.path == "" {
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, o.path, o.buf.Bytes(), 0)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("output",
		logging.FieldOutput, o.path,
		logging.FieldBytes, o.buf.Len(),
		"written", written,
	)
	return nil
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "", "write output to file instead of stdout")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
