package viewer

// Viewport is the rectangle of the render surface in client (pixel) coordinates
type Viewport struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewViewport creates a viewport anchored at the client origin
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Aspect returns width / height, or 1 for a degenerate viewport
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// Empty reports whether the viewport has no area
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// NDC converts client coordinates to normalized device coordinates (-1..1,
// y up)
func (v Viewport) NDC(clientX, clientY float64) (float64, float64) {
	x := ((clientX-v.Left)/v.Width)*2 - 1
	y := -((clientY-v.Top)/v.Height)*2 + 1
	return x, y
}

// Client converts normalized device coordinates back to client coordinates
func (v Viewport) Client(ndcX, ndcY float64) (float64, float64) {
	x := v.Left + (ndcX+1)/2*v.Width
	y := v.Top + (1-ndcY)/2*v.Height
	return x, y
}

// Contains reports whether the client point lies inside the viewport
func (v Viewport) Contains(clientX, clientY float64) bool {
	return clientX >= v.Left && clientX < v.Left+v.Width &&
		clientY >= v.Top && clientY < v.Top+v.Height
}
