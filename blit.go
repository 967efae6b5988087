package swr

import "github.com/gogpu/swr/core"

// Rect describes a rectangular region of a texture in pixel coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Blit copies srcRect of src into dstRect of dst, nearest-neighbor
// resampling when the rects differ in size and converting between pixel
// formats texel by texel via the shared float Color representation.
// Blitting a texture onto itself with identical rects is the identity.
func Blit(src, dst *Texture, srcRect, dstRect Rect) {
	if srcRect.Width <= 0 || srcRect.Height <= 0 || dstRect.Width <= 0 || dstRect.Height <= 0 {
		return
	}
	for dy := 0; dy < dstRect.Height; dy++ {
		sy := srcRect.Y + dy*srcRect.Height/dstRect.Height
		for dx := 0; dx < dstRect.Width; dx++ {
			sx := srcRect.X + dx*srcRect.Width/dstRect.Width
			c := src.ReadColor(sx, sy)
			dst.WriteColor(dstRect.X+dx, dstRect.Y+dy, c)
		}
	}
}

// Blit resolves srcID/dstID to their textures and copies srcRect into
// dstRect, per the package-level Blit function.
func (c *Context) Blit(dstID, srcID core.TextureID, srcRect, dstRect Rect) error {
	src, err := c.textures.Get(srcID)
	if err != nil {
		return err
	}
	dst, err := c.textures.Get(dstID)
	if err != nil {
		return err
	}
	Blit(src, dst, srcRect, dstRect)
	return nil
}
