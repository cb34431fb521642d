package blockarena

import "unsafe"

// block is one contiguous buffer obtained from the memory source with a bump
// cursor. offset only moves forward, except on reset.
type block struct {
	data   []byte
	offset int
	next   *block
}

func (b *block) capacity() int { return len(b.data) }

func (b *block) free() int { return len(b.data) - b.offset }

// cursor returns the address of data[offset].
func (b *block) cursor() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data))) + uintptr(b.offset)
}

// probe reports the padding needed to place n bytes aligned to alignment at
// the cursor, and whether they fit. It does not modify the block.
func (b *block) probe(n, alignment int) (int, bool) {
	free := b.free()
	if n > free {
		return 0, false
	}
	pad := padding(b.cursor(), alignment)
	if pad > free-n {
		return 0, false
	}
	return pad, true
}

// commit claims pad+n bytes found by probe. The returned slice has its
// capacity clipped to n.
func (b *block) commit(pad, n int) []byte {
	start := b.offset + pad
	b.offset = start + n
	return b.data[start : start+n : start+n]
}

func (b *block) tryAllocate(n, alignment int) ([]byte, bool) {
	pad, ok := b.probe(n, alignment)
	if !ok {
		return nil, false
	}
	return b.commit(pad, n), true
}

func (b *block) reset() { b.offset = 0 }

// padding returns the distance from addr to the next multiple of alignment.
// alignment must be a power of two.
func padding(addr uintptr, alignment int) int {
	mask := uintptr(alignment) - 1
	return int(-addr & mask)
}

// alignUp rounds n up to a multiple of alignment. The caller checks for
// overflow.
func alignUp(n, alignment int) int {
	mask := alignment - 1
	return (n + mask) &^ mask
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
