package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Register BMP and TIFF decoders for imaging.Open / image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Gotman08/labellisation/grid"
)

// Open loads an image file into a grayscale Grid, dispatching on the file
// extension: .pgm and .ppm go through the native netpbm readers; .webp is
// decoded with chai2010/webp; anything else is handed to imaging.Open
// (PNG, JPEG, GIF, TIFF, BMP via registered decoders), with a webp fallback
// for files imaging cannot decode. Color inputs are converted to grayscale
// with the standard luminosity weights.
// Complexity: O(W×H) after decoding.
func Open(path string) (*grid.Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pgm":
		return ReadPGM(path)
	case ".ppm":
		return ReadPPM(path)
	case ".webp":
		return openWebP(path)
	default:
		img, err := imaging.Open(path)
		if err != nil {
			// Some webp files carry foreign extensions; try the webp
			// decoder before giving up.
			if g, werr := openWebP(path); werr == nil {
				return g, nil
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
		}
		return FromImage(img)
	}
}

func openWebP(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding webp %s: %w", path, err)
	}

	return FromImage(img)
}

// FromImage converts any image.Image to a grayscale Grid using the same
// integer luminosity weights as the PPM reader, so every ingestion path
// binarizes identically.
// Complexity: O(W×H).
func FromImage(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	g, err := grid.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	data := g.Data()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, gr, b, _ := img.At(x, y).RGBA() // 16-bit channels
			data[i] = luminosity(int(r>>8), int(gr>>8), int(b>>8))
			i++
		}
	}

	return g, nil
}

// ToImage wraps g in an image.Gray sharing no state with the grid.
// Complexity: O(W×H).
func ToImage(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Data())

	return img
}

// SaveVisualization persists the label grid as a grayscale image: labels
// are remapped onto [1,255] via LabelGrid.ToVisualization, then written in
// the format implied by the extension (.pgm/.ppm natively in binary
// encoding, .webp losslessly, anything else through imaging.Save).
func SaveVisualization(path string, lg *grid.LabelGrid) error {
	viz := lg.ToVisualization()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pgm":
		return WritePGM(path, viz, true)
	case ".ppm":
		return WritePPM(path, viz, true)
	case ".webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("imageio: creating %s: %w", path, err)
		}
		defer f.Close()
		// Lossless: labels are categorical, compression artifacts would
		// invent components.
		return webp.Encode(f, ToImage(viz), &webp.Options{Lossless: true})
	default:
		if err := imaging.Save(ToImage(viz), path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
		}
		return nil
	}
}
