// Package imaging prepares screen images for text recognition.
//
// The central entry point is Preprocess, which turns a color image into a
// single-channel, binarized image tuned for OCR:
//
//  1. Grayscale conversion using ITU-R BT.601 luminance weights
//     (0.299*R + 0.587*G + 0.114*B)
//  2. Adaptive Gaussian thresholding over an 11x11 neighborhood with an
//     offset of 2 below the local weighted mean
//  3. Linear contrast rescale: clamp(1.5*v, 0, 255)
//  4. Morphological closing with a 2x2 element to fill gaps in glyph strokes
//  5. Morphological opening with the same element to drop isolated specks
//
// Every step is deterministic: the same input always yields byte-identical
// output with the same width and height as the input.
//
// # Coordinate System
//
// Intermediate and output images are rebased so their bounds start at (0,0),
// X increasing rightward and Y increasing downward.
//
// # Supporting Functions
//
//   - Normalize: copy any image.Image into an *image.NRGBA at the origin
//   - Thumbnail: aspect-preserving downscale for on-screen previews
//   - ImageCache: thread-safe loader for images read from disk
//
// # Error Handling
//
// Preprocess fails with an invalid_image error for a nil image or one with
// empty bounds. The remaining functions assume valid input.
package imaging
