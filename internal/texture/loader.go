package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
)

// LoadFile reads an image file (PNG, JPEG or TGA) and builds a swizzled
// mipmapped texture from it.
func LoadFile(path string) (*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	t, err := Build(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return t, nil
}
