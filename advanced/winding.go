package advanced

// Reverse the winding of every triangle in place, turning (a, b, c) into
// (c, b, a). Reversing twice restores the original buffer.
func (buf IndexBuffer) Reverse() {
	for i := 0; i+2 < len(buf); i += 3 {
		buf[i], buf[i+2] = buf[i+2], buf[i]
	}
}

// Like Reverse, but leaves buf alone and returns a reversed copy.
func (buf IndexBuffer) Reversed() IndexBuffer {
	result := make(IndexBuffer, len(buf))
	copy(result, buf)
	result.Reverse()
	return result
}

// Triangulation always produces counterclockwise triangles (with y pointing
// up). If inverse is set, flip them to clockwise.
func ApplyWinding(buf IndexBuffer, inverse bool) IndexBuffer {
	if inverse {
		buf.Reverse()
	}
	return buf
}
