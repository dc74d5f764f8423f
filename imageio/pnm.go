package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Gotman08/labellisation/grid"
)

// Sentinel errors for netpbm parsing.
var (
	// ErrBadMagic indicates a file that does not start with a supported
	// netpbm magic number (P2/P5 for PGM, P3/P6 for PPM).
	ErrBadMagic = errors.New("imageio: unsupported netpbm magic number")
	// ErrBadHeader indicates a malformed or out-of-range header field.
	ErrBadHeader = errors.New("imageio: malformed netpbm header")
	// ErrPixelRange indicates a pixel sample outside [0, maxval].
	ErrPixelRange = errors.New("imageio: pixel value out of range")
	// ErrTruncated indicates the file ended before all pixel data was read.
	ErrTruncated = errors.New("imageio: truncated pixel data")
	// ErrUnsupportedFormat indicates a file extension no reader handles.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
)

// maxSample is the largest sample value the 8-bit grid model can hold.
const maxSample = 255

// ReadPGM reads a PGM (Portable GrayMap) file in ASCII (P2) or binary (P5)
// encoding into a Grid. Comments (# to end of line) are skipped anywhere in
// the header and, for P2, between samples.
// Complexity: O(W×H).
func ReadPGM(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	switch magic {
	case "P2":
		return readGrayASCII(br)
	case "P5":
		return readGrayBinary(br)
	default:
		return nil, fmt.Errorf("%w: %q (want P2 or P5)", ErrBadMagic, magic)
	}
}

// ReadPPM reads a PPM (Portable PixMap) file in ASCII (P3) or binary (P6)
// encoding, converting color to grayscale with the standard luminosity
// weights Gray = (299·R + 587·G + 114·B) / 1000 in integer arithmetic.
// Complexity: O(W×H).
func ReadPPM(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	switch magic {
	case "P3":
		return readColorASCII(br)
	case "P6":
		return readColorBinary(br)
	default:
		return nil, fmt.Errorf("%w: %q (want P3 or P6)", ErrBadMagic, magic)
	}
}

// WritePGM writes g as a PGM file: binary P5 when binary is true, ASCII P2
// otherwise. Complexity: O(W×H).
func WritePGM(path string, g *grid.Grid, binary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if binary {
		fmt.Fprintf(bw, "P5\n%d %d\n%d\n", g.Width, g.Height, maxSample)
		if _, err := bw.Write(g.Data()); err != nil {
			return fmt.Errorf("imageio: writing %s: %w", path, err)
		}
	} else {
		fmt.Fprintf(bw, "P2\n%d %d\n%d\n", g.Width, g.Height, maxSample)
		for r := 0; r < g.Height; r++ {
			for c := 0; c < g.Width; c++ {
				if c > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(strconv.Itoa(int(g.At(r, c))))
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// WritePPM writes g as a PPM file with R=G=B duplicated from the gray value:
// binary P6 when binary is true, ASCII P3 otherwise.
// Complexity: O(W×H).
func WritePPM(path string, g *grid.Grid, binary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if binary {
		fmt.Fprintf(bw, "P6\n%d %d\n%d\n", g.Width, g.Height, maxSample)
		for _, v := range g.Data() {
			bw.Write([]byte{v, v, v})
		}
	} else {
		fmt.Fprintf(bw, "P3\n%d %d\n%d\n", g.Width, g.Height, maxSample)
		for r := 0; r < g.Height; r++ {
			for c := 0; c < g.Width; c++ {
				if c > 0 {
					bw.WriteByte(' ')
				}
				v := int(g.At(r, c))
				fmt.Fprintf(bw, "%d %d %d", v, v, v)
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// readHeader parses width, height, and maxval after the magic token.
func readHeader(br *bufio.Reader) (w, h, max int, err error) {
	if w, err = readNumber(br); err != nil {
		return 0, 0, 0, err
	}
	if h, err = readNumber(br); err != nil {
		return 0, 0, 0, err
	}
	if max, err = readNumber(br); err != nil {
		return 0, 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: dimensions %dx%d", ErrBadHeader, w, h)
	}
	if max <= 0 || max > maxSample {
		return 0, 0, 0, fmt.Errorf("%w: maxval %d (only 8-bit supported)", ErrBadHeader, max)
	}

	return w, h, max, nil
}

func readGrayASCII(br *bufio.Reader) (*grid.Grid, error) {
	w, h, max, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	data := g.Data()
	for i := range data {
		v, err := readNumber(br)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %v", ErrTruncated, i, err)
		}
		if v < 0 || v > max {
			return nil, fmt.Errorf("%w: %d > maxval %d", ErrPixelRange, v, max)
		}
		data[i] = uint8(v)
	}

	return g, nil
}

func readGrayBinary(br *bufio.Reader) (*grid.Grid, error) {
	w, h, _, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	// Exactly one whitespace byte separates the header from raw data;
	// readNumber already consumed it.
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(br, g.Data()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return g, nil
}

func readColorASCII(br *bufio.Reader) (*grid.Grid, error) {
	w, h, max, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	data := g.Data()
	for i := range data {
		var rgb [3]int
		for j := 0; j < 3; j++ {
			v, err := readNumber(br)
			if err != nil {
				return nil, fmt.Errorf("%w: pixel %d: %v", ErrTruncated, i, err)
			}
			if v < 0 || v > max {
				return nil, fmt.Errorf("%w: %d > maxval %d", ErrPixelRange, v, max)
			}
			rgb[j] = v
		}
		data[i] = luminosity(rgb[0], rgb[1], rgb[2])
	}

	return g, nil
}

func readColorBinary(br *bufio.Reader) (*grid.Grid, error) {
	w, h, _, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	data := g.Data()
	buf := make([]byte, 3*w)
	for r := 0; r < h; r++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrTruncated, r, err)
		}
		for c := 0; c < w; c++ {
			data[r*w+c] = luminosity(int(buf[3*c]), int(buf[3*c+1]), int(buf[3*c+2]))
		}
	}

	return g, nil
}

// luminosity converts an RGB triple to gray with integer-only arithmetic:
// (299·R + 587·G + 114·B) / 1000.
func luminosity(r, g, b int) uint8 {
	return uint8((299*r + 587*g + 114*b) / 1000)
}

// readToken skips whitespace and # comments, then reads one token of
// non-whitespace bytes.
func readToken(br *bufio.Reader) (string, error) {
	if err := skipWhitespaceAndComments(br); err != nil {
		return "", err
	}
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF && len(tok) > 0 {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

// readNumber reads the next token and parses it as a non-negative integer.
func readNumber(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadHeader, tok)
	}

	return n, nil
}

// skipWhitespaceAndComments consumes whitespace and comment lines
// (# to end of line).
func skipWhitespaceAndComments(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(b):
			continue
		case b == '#':
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return err
			}
		default:
			return br.UnreadByte()
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
