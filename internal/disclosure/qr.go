package disclosure

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 180
	MinSize     = 64
	MaxSize     = 1024
)

// Render encodes data as a PNG QR code at the high error-correction level,
// with the standard quiet-zone margin. size is the image width in pixels.
func Render(data []byte, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("qr size %d outside [%d, %d]", size, MinSize, MaxSize)
	}

	q, err := qrcode.New(string(data), qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	q.DisableBorder = false

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("rendering qr png: %w", err)
	}
	return png, nil
}
