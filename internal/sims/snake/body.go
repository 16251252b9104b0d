package snake

// body is a fixed-capacity double-ended queue of positions backed by a ring
// buffer. Index 0 is the head. Capacity equals the number of grid cells, which
// bounds the snake's length, so pushes never need to grow the buffer.
type body struct {
	buf   []Position
	front int
	n     int
}

func newBody(capacity int) *body {
	if capacity < 1 {
		capacity = 1
	}
	return &body{buf: make([]Position, capacity)}
}

func (b *body) len() int { return b.n }

func (b *body) pushFront(p Position) {
	if b.n == len(b.buf) {
		panic("snake: body overflow")
	}
	b.front = (b.front - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.front] = p
	b.n++
}

func (b *body) popBack() Position {
	idx := (b.front + b.n - 1) % len(b.buf)
	p := b.buf[idx]
	b.n--
	return p
}

func (b *body) head() Position { return b.buf[b.front] }

func (b *body) tail() Position { return b.buf[(b.front+b.n-1)%len(b.buf)] }

// at returns the i-th segment counting from the head.
func (b *body) at(i int) Position { return b.buf[(b.front+i)%len(b.buf)] }

// appendTo appends the segments head-to-tail onto dst.
func (b *body) appendTo(dst []Position) []Position {
	for i := 0; i < b.n; i++ {
		dst = append(dst, b.at(i))
	}
	return dst
}
