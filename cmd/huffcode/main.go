// Command huffcode builds a Huffman code from a frequency table and uses it
// to encode and decode symbol sequences.
//
// The frequency table comes either from a YAML file (local path or s3 path):
//
//	frequencies:
//	  a: 5
//	  b: 4
//
// or from the characters of a sample text given with --text.
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
)

func init() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
