package yiv

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sort"
	"sync"
	"time"
)

// List is a thread-safe ordered collection of images.
//
// Entries are shared references: an Image may be held by the list and by any
// number of external owners at once, and storage is reclaimed when the last
// reference goes away. The zero value is an empty list ready for use.
type List struct {
	mu     sync.Mutex
	images []*Image
}

// Add appends img to the end of the list.
func (l *List) Add(img *Image) {
	l.Batch(func(b *Batch) { b.Add(img) })
}

// Remove deletes the entry at index i, shifting later entries down by one.
// Out-of-range indices are ignored.
func (l *List) Remove(i int) {
	l.Batch(func(b *Batch) { b.Remove(i) })
}

// At returns the entry at index i, or nil if i is out of range.
func (l *List) At(i int) *Image {
	var img *Image
	l.Batch(func(b *Batch) { img = b.At(i) })
	return img
}

// Len returns the number of entries.
func (l *List) Len() int {
	var n int
	l.Batch(func(b *Batch) { n = b.Len() })
	return n
}

// Shuffle rearranges the entries into a uniformly random permutation. The
// generator is reseeded from the operating system entropy source on every
// call.
func (l *List) Shuffle() {
	l.Batch(func(b *Batch) { b.Shuffle() })
}

// Sort orders the entries by the caller-supplied comparator, which reports
// whether a should sort before b. The sort is stable. The comparator must
// describe a strict weak ordering; the list does not validate it.
func (l *List) Sort(less func(a, b *Image) bool) {
	l.Batch(func(b *Batch) { b.Sort(less) })
}

// Batch runs fn with exclusive access to the list, so a composite
// read-modify-write sequence executes atomically. The lock is held for the
// duration of fn and released on every exit path.
//
// fn must use the Batch it is handed rather than calling methods on the
// List itself; those would re-acquire the lock and deadlock.
func (l *List) Batch(fn func(*Batch)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&Batch{list: l})
}

// Batch provides unlocked access to a List's contents for the duration of a
// List.Batch call. It must not be retained after the call returns.
type Batch struct {
	list *List
}

// Add appends img to the end of the list.
func (b *Batch) Add(img *Image) {
	b.list.images = append(b.list.images, img)
}

// Remove deletes the entry at index i; out-of-range indices are ignored.
func (b *Batch) Remove(i int) {
	if i < 0 || i >= len(b.list.images) {
		return
	}
	b.list.images = append(b.list.images[:i], b.list.images[i+1:]...)
}

// At returns the entry at index i, or nil if i is out of range.
func (b *Batch) At(i int) *Image {
	if i < 0 || i >= len(b.list.images) {
		return nil
	}
	return b.list.images[i]
}

// Len returns the number of entries.
func (b *Batch) Len() int {
	return len(b.list.images)
}

// Shuffle rearranges the entries into a uniformly random permutation.
func (b *Batch) Shuffle() {
	r := rand.New(rand.NewPCG(entropySeed(), entropySeed()))
	r.Shuffle(len(b.list.images), func(i, j int) {
		b.list.images[i], b.list.images[j] = b.list.images[j], b.list.images[i]
	})
}

// Sort stably orders the entries by the caller-supplied comparator.
func (b *Batch) Sort(less func(a, b *Image) bool) {
	s := b.list.images
	sort.SliceStable(s, func(i, j int) bool {
		return less(s[i], s[j])
	})
}

// entropySeed draws 64 bits from the operating system entropy source,
// falling back to the wall clock if that fails.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
