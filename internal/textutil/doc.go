// Package textutil provides text processing helpers shared by the scan
// pipeline: tokenization for title comparison and query cleanup.
//
// The tokenization process lowercases text, splits on whitespace, and
// filters tokens shorter than 3 characters so that articles and stray OCR
// fragments do not dominate match scoring.
package textutil
