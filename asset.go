package cellbloom

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageResult is the outcome of an asynchronous image decode.
type ImageResult struct {
	Image  image.Image
	Format string
	Err    error
}

// LoadImageAsync decodes r on a new goroutine and delivers exactly one
// result on the returned channel. The channel is buffered so the decoder
// never blocks on a caller that stopped polling. If r is an io.Closer it is
// closed after decoding.
func LoadImageAsync(r io.Reader) <-chan ImageResult {
	ch := make(chan ImageResult, 1)
	go func() {
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}
		img, format, err := image.Decode(r)
		if err != nil {
			err = fmt.Errorf("cellbloom: decode image: %w", err)
		}
		ch <- ImageResult{Image: img, Format: format, Err: err}
	}()
	return ch
}

// LoadImageFileAsync opens path and decodes it like LoadImageAsync. Open
// failures are delivered on the channel.
func LoadImageFileAsync(path string) <-chan ImageResult {
	f, err := os.Open(path)
	if err != nil {
		ch := make(chan ImageResult, 1)
		ch <- ImageResult{Err: fmt.Errorf("cellbloom: open image: %w", err)}
		return ch
	}
	return LoadImageAsync(f)
}

// pollImage takes the pending result, if any, without blocking.
func pollImage(ch <-chan ImageResult) (ImageResult, bool) {
	select {
	case res := <-ch:
		return res, true
	default:
		return ImageResult{}, false
	}
}
