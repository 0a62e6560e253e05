package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/gdbmi/gdbmi"
	"github.com/dhamidi/gdbmi/gdbmi/format"
	"github.com/dhamidi/gdbmi/gdbmi/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a GDB/MI transcript from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open transcript: %w", err)
				}
				defer f.Close()
				r = f
			}

			var encode func(*gdbmi.Output) error
			switch outputFormat {
			case "json":
				encode = format.NewJSONEncoder(os.Stdout).Encode
			case "text":
				encode = format.NewTextEncoder(os.Stdout).Encode
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			logger := commonlog.GetLogger("gdbmicat")
			sawError := false

			p := parser.New(func(out *gdbmi.Output) {
				if err := encode(out); err != nil {
					logger.Errorf("encode output: %s", err)
					sawError = true
				}
				gdbmi.Free(out)
			}, func(perr *gdbmi.ParseError) {
				logger.Warningf("parse error: %s", perr)
				fmt.Fprintln(os.Stderr, perr.Error())
				sawError = true
			})
			defer p.Close()

			buf := make([]byte, 4096)
			for {
				n, err := r.Read(buf)
				if n > 0 {
					if _, perr := p.Push(buf[:n]); perr != nil {
						return fmt.Errorf("push transcript: %w", perr)
					}
				}
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("read transcript: %w", err)
				}
			}

			if sawError {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
