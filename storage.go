package bytebuf

// Storage is a contiguous mutable byte region. Bytes returns the whole region;
// writes through the returned slice are visible to every holder of the storage.
type Storage interface {
	Bytes() []byte
}

// Sizer reports the current size of a storage in bytes without materializing it.
type Sizer interface {
	Size() uint64
}

// Heap is a Storage backed by a Go slice.
type Heap struct {
	data []byte
}

// NewHeap allocates a zero-filled heap storage of size bytes.
func NewHeap(size int) *Heap {
	return &Heap{data: make([]byte, size)}
}

// HeapOf wraps data without copying it.
func HeapOf(data []byte) *Heap {
	return &Heap{data: data}
}

// Bytes returns the backing slice.
func (h *Heap) Bytes() []byte {
	return h.data
}

// Size returns the length of the backing slice.
func (h *Heap) Size() uint64 {
	return uint64(len(h.data))
}
