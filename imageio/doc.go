// Package imageio reads images into binary grids and persists label grids,
// isolating all file I/O from the labeling core.
//
// What:
//
//   - ReadPGM / WritePGM: Portable GrayMap, ASCII (P2) and binary (P5).
//   - ReadPPM / WritePPM: Portable PixMap, ASCII (P3) and binary (P6),
//     color converted to gray via (299·R + 587·G + 114·B) / 1000.
//   - Open: extension-dispatched ingestion — netpbm natively, WebP through
//     chai2010/webp, PNG/JPEG/GIF/TIFF/BMP through disintegration/imaging
//     with golang.org/x/image decoders registered.
//   - SaveVisualization: LabelGrid → [1,255] grayscale remap → file.
//
// Why:
//
//   - Netpbm is parsed natively: trivially simple, uncompressed, and the
//     interchange format the labeling pipeline standardizes on.
//   - Everything else rides on the imaging ecosystem rather than
//     hand-rolled decoders.
//
// Errors:
//
//   - ErrBadMagic: not a supported netpbm magic number.
//   - ErrBadHeader: malformed or out-of-range header field.
//   - ErrPixelRange: sample above the declared maxval.
//   - ErrTruncated: file ends before all pixel data.
//   - ErrUnsupportedFormat: no decoder or encoder for the file.
//
// The package never binarizes on its own: callers apply Grid.Binarize with
// their threshold before labeling.
package imageio
