package huffman

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func chars(str string) []string {
	return strings.Split(str, "")
}

func makeTestCodec() *Codec[string, int] {
	c, err := New(map[string]int{"a": 5, "b": 4, "c": 3, "d": 2, "e": 1})
	if err != nil {
		panic(err)
	}
	return c
}

func ExampleCodec() {
	c, err := New(map[string]int{"a": 5, "b": 4, "c": 3, "d": 2, "e": 1})
	if err != nil {
		panic(err)
	}

	bits, err := c.Encode(strings.Split("abcdeabcdabcaba", ""))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bits))

	seq, err := c.Decode(bits)
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Join(seq, ""))
	// Output:
	// 111000011010111000011111000111011
	// abcdeabcdabcaba
}

func ExampleWriteCodeTable() {
	c, err := New(map[int]int{0: 2, 1: 5, 2: 2, 3: 3, 4: 2})
	if err != nil {
		panic(err)
	}
	_, _ = WriteCodeTable(os.Stdout, c, 3)
	// Output:
	//    0: 100
	//    1: 11
	//    2: 101
	// ...
}

func TestCodec_Characters(t *testing.T) {
	c := makeTestCodec()
	seq := chars("abcdeabcdabcaba")

	bits, err := c.Encode(seq)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expectBits := Code("111000011010111000011111000111011")
	if expectBits != bits {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expectBits, bits)
	}

	out, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(seq, out) {
		t.Errorf("wrong decoding:\n\texpect: %q\n\tactual: %q", seq, out)
	}

	a, _ := c.Lookup("a")
	e, _ := c.Lookup("e")
	if a.Size() > e.Size() {
		t.Errorf("code for a (%s) is longer than code for e (%s)", a, e)
	}
}

func TestCodec_Integers(t *testing.T) {
	c, err := New(map[int]int{0: 2, 1: 5, 2: 2, 3: 3, 4: 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	seq := []int{0, 1, 2, 3, 4}

	bits, err := c.Encode(seq)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expectBits := Code("100111010100"); expectBits != bits {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expectBits, bits)
	}

	out, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(seq, out) {
		t.Errorf("wrong decoding:\n\texpect: %v\n\tactual: %v", seq, out)
	}
}

func TestCodec_SingleSymbol(t *testing.T) {
	c, err := New(map[string]int{"x": 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	seq := []string{"x", "x", "x"}

	bits, err := c.Encode(seq)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expectBits := Code("000"); expectBits != bits {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", expectBits, bits)
	}

	out, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(seq, out) {
		t.Errorf("wrong decoding:\n\texpect: %q\n\tactual: %q", seq, out)
	}

	out, err = c.Decode("01")
	if !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("expected ErrMalformedEncoding, got %v", err)
	}
	if expect := []string{"x"}; !reflect.DeepEqual(expect, out) {
		t.Errorf("wrong partial decoding:\n\texpect: %q\n\tactual: %q", expect, out)
	}
}

func TestCodec_NewFromEntries(t *testing.T) {
	c, err := NewFromEntries(CountFrequencies(chars("abcdeabcdabcaba")))
	if err != nil {
		t.Fatalf("NewFromEntries failed: %v", err)
	}
	expectCodes := map[string]Code{"a": "11", "b": "10", "c": "00", "d": "011", "e": "010"}
	if actualCodes := c.CodeTable(); !reflect.DeepEqual(expectCodes, actualCodes) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expectCodes, actualCodes)
	}

	_, err = NewFromEntries[string, int](nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	_, err = New(map[string]int{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCodec_UnknownSymbol(t *testing.T) {
	c := makeTestCodec()

	bits, err := c.Encode(chars("abzc"))
	if bits != "" {
		t.Errorf("expected no output, got %s", bits)
	}
	var use *UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError, got %v", err)
	}
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected errors.Is(err, ErrUnknownSymbol)")
	}
	if use.Index != 2 || use.Symbol != "z" {
		t.Errorf("wrong error: expect {2 z}, actual %+v", *use)
	}
	if expect, actual := "huffman: unknown symbol z at index 2", err.Error(); expect != actual {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestCodec_Truncation(t *testing.T) {
	c := makeTestCodec()
	seq := chars("abcdeabcdabcaba")
	bits, err := c.Encode(seq)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Every cut that does not land on a code boundary must be rejected.
	boundaries := map[int]bool{0: true}
	n := 0
	for _, symbol := range seq {
		hc, _ := c.Lookup(symbol)
		n += hc.Size()
		boundaries[n] = true
	}

	for cut := 0; cut < len(bits); cut++ {
		out, err := c.Decode(bits[:cut])
		if boundaries[cut] {
			if err != nil {
				t.Errorf("cut %d: unexpected error: %v", cut, err)
			}
			continue
		}
		var mee *MalformedEncodingError
		if !errors.As(err, &mee) {
			t.Errorf("cut %d: expected *MalformedEncodingError, got %v", cut, err)
			continue
		}
		if mee.Pending.Size() == 0 || mee.MinMissing < 1 || mee.MaxMissing < mee.MinMissing {
			t.Errorf("cut %d: implausible error %+v", cut, *mee)
		}
		if !reflect.DeepEqual(seq[:len(out)], out) {
			t.Errorf("cut %d: partial output %q is not a prefix of the input", cut, out)
		}
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 100; iter++ {
		n := 2 + rng.Intn(60)
		freqs := make(map[rune]float64, n)
		alphabet := make([]rune, 0, n)
		for i := 0; i < n; i++ {
			r := rune('A' + i)
			freqs[r] = rng.Float64() * 10
			alphabet = append(alphabet, r)
		}

		t.Run(strconv.Itoa(iter), func(t *testing.T) {
			c, err := New(freqs)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			seq := make([]rune, rng.Intn(200))
			for i := range seq {
				seq[i] = alphabet[rng.Intn(n)]
			}

			bits, err := c.Encode(seq)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			out, err := c.Decode(bits)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(seq) == 0 && len(out) == 0 {
				return
			}
			if !reflect.DeepEqual(seq, out) {
				t.Errorf("round trip failed:\n\texpect: %q\n\tactual: %q", string(seq), string(out))
			}
		})
	}
}

func TestCodec_Deterministic(t *testing.T) {
	freqs := map[string]int{"q": 3, "r": 3, "s": 1, "t": 1, "u": 2, "v": 3}
	c1, err := New(freqs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c2, err := New(freqs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c1.DebugString() != c2.DebugString() {
		t.Errorf("codecs differ:\n\tfirst:  %s\n\tsecond: %s", c1.DebugString(), c2.DebugString())
	}
}

func TestCodec_Concurrent(t *testing.T) {
	c := makeTestCodec()
	seq := chars("abcdeabcdabcaba")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bits, err := c.Encode(seq)
				if err != nil {
					errs <- err
					return
				}
				out, err := c.Decode(bits)
				if err != nil {
					errs <- err
					return
				}
				if !reflect.DeepEqual(seq, out) {
					errs <- fmt.Errorf("round trip failed: %q", out)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestCodec_Accessors(t *testing.T) {
	c := makeTestCodec()

	if expect, actual := []string{"a", "b", "c", "d", "e"}, c.Symbols(); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong symbols:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
	if expect, actual := 5, c.Len(); expect != actual {
		t.Errorf("wrong length: expect %d, actual %d", expect, actual)
	}

	expectInverse := map[Code]string{"11": "a", "10": "b", "00": "c", "011": "d", "010": "e"}
	if actualInverse := c.InverseCodeTable(); !reflect.DeepEqual(expectInverse, actualInverse) {
		t.Errorf("wrong inverse table:\n\texpect: %v\n\tactual: %v", expectInverse, actualInverse)
	}

	table := c.CodeTable()
	table["a"] = "0"
	if hc, _ := c.Lookup("a"); hc != "11" {
		t.Errorf("CodeTable returned shared state: code for a is now %s", hc)
	}
	if _, found := c.Lookup("z"); found {
		t.Errorf("Lookup found a code for z")
	}
	if expect, actual := 15, c.Tree().Weight(); expect != actual {
		t.Errorf("wrong root weight: expect %d, actual %d", expect, actual)
	}
}

func TestCodec_DebugString(t *testing.T) {
	c := makeTestCodec()

	expectDebug := strings.Join([]string{
		"Codec{\n",
		"\tMinSize() = 2\n",
		"\tMaxSize() = 3\n",
		"\tTree() = (15 (6 c (3 e d)) (9 b a))\n",
		"\tEncode(a) = \"11\"\n",
		"\tEncode(b) = \"10\"\n",
		"\tEncode(c) = \"00\"\n",
		"\tEncode(d) = \"011\"\n",
		"\tEncode(e) = \"010\"\n",
		"}\n",
	}, "")
	if actualDebug := c.DebugString(); expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}

func TestCodec_String(t *testing.T) {
	c := makeTestCodec()

	expectString := "(Huffman codec with 5 symbols, with coded lengths of 2 .. 3 bits)"
	if actualString := c.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}
