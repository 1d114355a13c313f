package photon

import (
	"fmt"
	"unsafe"
)

// DefaultBlockSize is the preferred capacity of an arena block.
const DefaultBlockSize = 64 * 1024

// arenaBlock is one link in the arena's block chain.
type arenaBlock struct {
	data []byte
	used int
	next *arenaBlock
}

// Arena is a bump allocator backed by a chain of blocks. Individual
// allocations are never freed; the whole arena is recycled with Reset.
// Pointers handed out stay valid across later allocations, but not
// across Reset. An Arena is not safe for concurrent use.
//
// Running out of address space surfaces as a runtime panic from the
// block allocation; there is no recovery path.
type Arena struct {
	head      *arenaBlock
	current   *arenaBlock
	blockSize int
	used      int
	allocated int
	blocks    int
}

// NewArena creates an arena with the given preferred block size. A
// non-positive size selects DefaultBlockSize. No memory is reserved
// until the first allocation.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: blockSize}
}

// Allocate returns size bytes whose first byte is align-aligned. The
// alignment must be a power of two. Requests larger than the block size
// get a dedicated block.
func (a *Arena) Allocate(size, align int) []byte {
	if size < 0 {
		panic(fmt.Sprintf("photon: negative arena allocation %d", size))
	}
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("photon: arena alignment %d is not a power of two", align))
	}
	if size == 0 {
		return nil
	}

	for {
		b := a.current
		if b == nil {
			break
		}
		pad := b.padFor(align)
		if b.used+pad+size <= len(b.data) {
			b.used += pad
			p := b.data[b.used : b.used+size : b.used+size]
			b.used += size
			a.used += pad + size
			return p
		}
		// The current block is exhausted. After a Reset the chain may
		// still hold empty blocks worth reusing before growing.
		if b.next == nil || b.next.used != 0 {
			break
		}
		a.current = b.next
	}

	a.grow(size, align)
	return a.Allocate(size, align)
}

// grow links a fresh block into the chain and makes it current.
func (a *Arena) grow(size, align int) {
	capacity := a.blockSize
	if size > capacity {
		// Oversized request: a dedicated block, padded only as far as
		// alignment may demand.
		capacity = size + align - 1
	}

	b := &arenaBlock{data: make([]byte, capacity)}
	if a.current == nil {
		a.head = b
		a.current = b
	} else {
		b.next = a.current.next
		a.current.next = b
		a.current = b
	}
	a.allocated += capacity
	a.blocks++
}

// padFor returns the padding needed so the next allocation in b starts
// at an align-aligned address.
func (b *arenaBlock) padFor(align int) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b.data))) + uintptr(b.used)
	return int(-addr & uintptr(align-1))
}

// AllocSlice returns a slice of count values of T backed by arena
// memory, aligned and sized for T. The slice contents are zeroed.
func AllocSlice[T any](a *Arena, count int) []T {
	if count == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	raw := a.Allocate(size*count, align)
	// Blocks recycled by Reset still hold their old bytes.
	clear(raw)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), count)
}

// allocString copies text into the arena and returns a string header
// borrowing the arena bytes. The result is invalidated by Reset.
func (a *Arena) allocString(text []byte) string {
	if len(text) == 0 {
		return ""
	}
	buf := a.Allocate(len(text), 1)
	copy(buf, text)
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// Reset marks every block empty without releasing any memory. All
// previously returned pointers become invalid.
func (a *Arena) Reset() {
	for b := a.head; b != nil; b = b.next {
		b.used = 0
	}
	a.current = a.head
	a.used = 0
}

// BytesUsed returns the bytes handed out since the last Reset,
// including alignment padding.
func (a *Arena) BytesUsed() int { return a.used }

// BytesTotal returns the total capacity held by the block chain.
func (a *Arena) BytesTotal() int { return a.allocated }

// BlockCount returns the number of blocks in the chain.
func (a *Arena) BlockCount() int { return a.blocks }
