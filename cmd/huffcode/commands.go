package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	cmderrors "cloudeng.io/errors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffcode"
)

type commonFlags struct {
	FreqsFile string
	Text      string
	Verbose   bool
}

func newRootCmd() *cobra.Command {
	var common commonFlags

	root := &cobra.Command{
		Use:           "huffcode",
		Short:         "Build Huffman codes and encode or decode symbol sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&common.FreqsFile, "freqs", "", "YAML frequency table, local or s3 path")
	pf.StringVar(&common.Text, "text", "", "sample text whose character counts form the frequency table")
	pf.BoolVar(&common.Verbose, "verbose", false, "log the Huffman tree and codes")

	root.AddCommand(
		newTableCmd(&common),
		newEncodeCmd(&common),
		newDecodeCmd(&common),
	)
	return root
}

func newTableCmd(common *commonFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the code table in symbol order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCodec(cmd.Context(), common)
			if err != nil {
				return err
			}
			_, err = huffman.WriteCodeTable(cmd.OutOrStdout(), c, limit)
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many symbols, 0 for all")
	return cmd
}

func newEncodeCmd(common *commonFlags) *cobra.Command {
	var chars, packed bool
	cmd := &cobra.Command{
		Use:   "encode SYMBOL...",
		Short: "Encode a sequence of symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCodec(cmd.Context(), common)
			if err != nil {
				return err
			}
			symbols := args
			if chars {
				symbols = splitChars(strings.Join(args, ""))
			}
			bits, err := c.Encode(symbols)
			if err != nil {
				return err
			}
			return writeBits(cmd.OutOrStdout(), bits, packed)
		},
	}
	cmd.Flags().BoolVar(&chars, "chars", false, "treat every character of the arguments as a symbol")
	cmd.Flags().BoolVar(&packed, "packed", false, "print <bits>:<hex> instead of a string of 0s and 1s")
	return cmd
}

func newDecodeCmd(common *commonFlags) *cobra.Command {
	var chars, packed bool
	cmd := &cobra.Command{
		Use:   "decode BITS...",
		Short: "Decode one or more encoded bit strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCodec(cmd.Context(), common)
			if err != nil {
				return err
			}
			sep := " "
			if chars {
				sep = ""
			}
			errs := cmderrors.M{}
			for _, arg := range args {
				seq, err := decodeArg(c, arg, packed)
				if err != nil {
					errs.Append(errors.Wrapf(err, "%q", arg))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(seq, sep))
			}
			return flatten(errs.Err())
		},
	}
	cmd.Flags().BoolVar(&chars, "chars", false, "print decoded symbols without separators")
	cmd.Flags().BoolVar(&packed, "packed", false, "arguments are <bits>:<hex> as printed by encode --packed")
	return cmd
}

func loadCodec(ctx context.Context, common *commonFlags) (*huffman.Codec[string, float64], error) {
	var entries []huffman.Entry[string, float64]
	switch {
	case common.FreqsFile != "" && common.Text != "":
		return nil, errors.New("--freqs and --text are mutually exclusive")
	case common.FreqsFile != "":
		var err error
		if entries, err = readFrequencies(ctx, common.FreqsFile); err != nil {
			return nil, err
		}
	case common.Text != "":
		entries = textFrequencies(common.Text)
	default:
		return nil, errors.New("please specify a frequency table with --freqs or --text")
	}

	c, err := huffman.NewFromEntries(entries)
	if err != nil {
		return nil, err
	}
	if common.Verbose {
		log.Print(c)
		log.Print(c.DebugString())
	}
	return c, nil
}

func writeBits(w io.Writer, bits huffman.Code, packed bool) error {
	if !packed {
		_, err := fmt.Fprintln(w, string(bits))
		return err
	}
	data, err := huffman.Pack(bits)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d:%s\n", bits.Size(), hex.EncodeToString(data))
	return err
}

func decodeArg(c *huffman.Codec[string, float64], arg string, packed bool) ([]string, error) {
	var bits huffman.Code
	if packed {
		i := strings.IndexByte(arg, ':')
		if i < 0 {
			return nil, errors.New("packed input must look like <bits>:<hex>")
		}
		size, err := strconv.Atoi(arg[:i])
		if err != nil {
			return nil, errors.Wrap(err, "bad bit count")
		}
		data, err := hex.DecodeString(arg[i+1:])
		if err != nil {
			return nil, errors.Wrap(err, "bad hex data")
		}
		if bits, err = huffman.Unpack(data, size); err != nil {
			return nil, err
		}
	} else {
		var err error
		if bits, err = huffman.ParseCode(arg); err != nil {
			return nil, err
		}
	}
	return c.Decode(bits)
}

// flatten copies an aggregated error into a plain one.  errors.M drops its
// first error each time it is unwrapped, and cobra unwraps returned errors
// while checking for flag.ErrHelp.
func flatten(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(err.Error())
}
