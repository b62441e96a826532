package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	huffman "github.com/chronos-tachyon/huffcode"
)

type frequencyFile struct {
	Frequencies yaml.MapSlice `yaml:"frequencies"`
}

// parseFrequencies decodes a YAML frequency table, keeping the order in which
// symbols appear in the file.
func parseFrequencies(data []byte) ([]huffman.Entry[string, float64], error) {
	var ff frequencyFile
	if err := yaml.UnmarshalStrict(data, &ff); err != nil {
		return nil, errors.Wrap(err, "failed to parse frequency table")
	}
	if len(ff.Frequencies) == 0 {
		return nil, errors.New("frequency table has no entries")
	}

	entries := make([]huffman.Entry[string, float64], 0, len(ff.Frequencies))
	for _, item := range ff.Frequencies {
		symbol := fmt.Sprint(item.Key)
		weight, err := toWeight(item.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %q", symbol)
		}
		entries = append(entries, huffman.MakeEntry(symbol, weight))
	}
	return entries, nil
}

func toWeight(v interface{}) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, errors.Errorf("weight %v is not a number", v)
	}
}

func readFrequencies(ctx context.Context, name string) ([]huffman.Entry[string, float64], error) {
	f, err := file.Open(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %v", name)
	}
	defer f.Close(ctx)

	data, err := io.ReadAll(f.Reader(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v", name)
	}
	entries, err := parseFrequencies(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%v", name)
	}
	return entries, nil
}

// textFrequencies counts the characters of text, in order of first
// appearance.
func textFrequencies(text string) []huffman.Entry[string, float64] {
	counts := huffman.CountFrequencies(splitChars(text))
	entries := make([]huffman.Entry[string, float64], len(counts))
	for i, entry := range counts {
		entries[i] = huffman.MakeEntry(entry.Symbol, float64(entry.Weight))
	}
	return entries
}

func splitChars(str string) []string {
	if str == "" {
		return nil
	}
	return strings.Split(str, "")
}
