// Package enhance prepares photographed disc covers for OCR.
//
// Disc covers are frequently dark with low-contrast grey-on-black typography;
// naive OCR fails without preprocessing. The package separates the pure pixel
// transform (histogram analysis, contrast stretch, midtone boost, edge
// emphasis) from codec I/O so the algorithm can be tested with plain pixel
// buffers.
package enhance
