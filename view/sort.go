package view

// sortFaces orders l.faces far-to-near using l.sortBuf as scratch space.
// Bottom-up merge sort: stable, so faces at equal depth keep the order they
// were added in, and allocation free once sortBuf reaches its high-water mark.
func (l *faceList) sortFaces() {
	n := len(l.faces)
	if n <= 1 {
		return
	}
	if cap(l.sortBuf) < n {
		l.sortBuf = make([]face, n)
	}
	l.sortBuf = l.sortBuf[:n]

	a := l.faces
	b := l.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeFaces(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(l.faces, l.sortBuf)
	}
}

// mergeFaces merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeFaces(src, dst []face, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// Farther first; ties keep the left run first.
		if src[i].depth >= src[j].depth {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
