// guidfmt renders 16-byte binary GUIDs in their canonical text form.
// It stands in for the binding layers that normally consume the guid
// package, reading a buffer from the command line or stdin.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	guid "github.com/vfsformats/guid-go"
	guidint "github.com/vfsformats/guid-go/internal/errors"
	"github.com/vfsformats/guid-go/logger"
)

var log = logger.WithComponent("guidfmt")

func main() {
	// .env is optional; flags and the process environment win
	_ = godotenv.Load()
	if env := os.Getenv("GUIDFMT_LOG_LEVEL"); env != "" {
		if l, err := zerolog.ParseLevel(env); err == nil {
			logger.SetLogLevel(l)
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		layoutName string
		braced     bool
		urn        bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "guidfmt <hex|->",
		Short: "Render a 16-byte binary GUID in its canonical text form",
		Long: `guidfmt decodes a 16-byte binary GUID and prints the canonical
lowercase hyphenated form. The input is either 32 hex digits (hyphens
and braces are ignored) or "-" to read 16 raw bytes from stdin.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLogLevel(zerolog.DebugLevel)
				log = logger.WithComponent("guidfmt")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, err := readBuffer(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			log.Debug().Int("size", len(buffer)).Str("layout", layoutName).Msg("decoding GUID buffer")

			var g guid.GUID
			switch layoutName {
			case "mixed":
				g, err = guid.FromMixedEndian(buffer)
			case "big":
				g, err = guid.FromBytes(buffer)
			default:
				return errors.Errorf("unknown layout %q, want \"mixed\" or \"big\"", layoutName)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render(g, braced, urn))
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutName, "layout", "mixed", `byte layout of the input: "mixed" or "big"`)
	cmd.PersistentFlags().BoolVar(&braced, "braced", false, "print the braced registry form")
	cmd.PersistentFlags().BoolVar(&urn, "urn", false, "print the urn:uuid form")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newNewCmd(&braced, &urn))

	return cmd
}

func newNewCmd(braced, urn *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a random (version 4) GUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guid.NewRandom()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render(g, *braced, *urn))
			return nil
		},
	}
}

func render(g guid.GUID, braced, urn bool) string {
	switch {
	case braced:
		return g.BracedString()
	case urn:
		return g.URN()
	default:
		return g.String()
	}
}

// readBuffer turns the command line argument into the raw 16-byte
// buffer the guid package expects. "-" reads raw bytes from stdin,
// anything else is parsed as hex with separators stripped.
func readBuffer(arg string, stdin io.Reader) ([]byte, error) {
	if arg == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, guidint.WrapErr(err, "unable to read stdin")
		}
		return b, nil
	}

	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '-', '{', '}', ' ':
			return -1
		}
		return r
	}, arg)

	b, err := hex.DecodeString(stripped)
	if err != nil {
		return nil, guidint.WrapErr(err, "invalid hex input")
	}
	return b, nil
}
