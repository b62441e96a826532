// Package huffman builds minimum-redundancy prefix codes (Huffman codes) from
// symbol frequency tables, and uses them to encode sequences of symbols into
// bit strings and to decode them again.
//
// Building a Codec happens in three steps: BuildTree turns the frequency
// table into a binary tree, GenerateCodes walks the tree to assign a Code to
// every symbol, and a Decoder indexes those codes for decoding.  New and
// NewFromEntries perform all three.
//
// Tree construction is deterministic.  Equal weights are ordered by subtree
// depth and then by insertion order, so the same frequency table always
// yields the same codes.  The codes are not canonicalized.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the IRE, 1952.
package huffman
