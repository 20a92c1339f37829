package smf

// Variable-length quantities carry 7 data bits per byte, most significant
// group first; every byte except the last has its high bit set. Delta-times
// between track events are the only place the format uses them.

// appendVLQ appends the minimal encoding of v to dst.
func appendVLQ(dst []byte, v uint32) []byte {
	var buf [5]byte
	n := len(buf) - 1
	buf[n] = byte(v) & 0x7F
	for v >>= 7; v > 0; v >>= 7 {
		n--
		buf[n] = byte(v)&0x7F | 0x80
	}
	return append(dst, buf[n:]...)
}

// readVLQ decodes a variable-length quantity at the cursor. Running out of
// bytes before a byte with the high bit clear is a truncation error.
func (r *reader) readVLQ() (uint32, error) {
	var v uint32
	for {
		b, err := r.readByte("variable-length quantity")
		if err != nil {
			return 0, err
		}
		v = v<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}
