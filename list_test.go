package yiv

import (
	"fmt"
	"sync"
	"testing"

	"github.com/yaznbook/yiv/codec"
)

func solidImage(t *testing.T, w, h int, r, g, b byte) *Image {
	t.Helper()
	pix := make([]byte, w*h*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = r, g, b
	}
	img, err := FromPixels(codec.Pixels{Pix: pix, Width: w, Height: h, Channels: 3})
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}
	return img
}

func TestList_AddRemoveAt(t *testing.T) {
	a := newTestImage(t, 2, 2, 3, 0)
	b := newTestImage(t, 3, 3, 3, 0)

	list := &List{}
	list.Add(a)
	list.Add(b)
	if list.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", list.Len())
	}

	list.Remove(0)
	if list.Len() != 1 {
		t.Fatalf("Len after remove: got %d, want 1", list.Len())
	}
	if list.At(0) != b {
		t.Error("remaining entry should be the second image")
	}
}

func TestList_AtOutOfRange(t *testing.T) {
	list := &List{}
	list.Add(newTestImage(t, 2, 2, 3, 0))

	if list.At(list.Len()) != nil {
		t.Error("At(Len()) must return nil")
	}
	if list.At(-1) != nil {
		t.Error("At(-1) must return nil")
	}
}

func TestList_RemoveOutOfRange(t *testing.T) {
	list := &List{}
	list.Add(newTestImage(t, 2, 2, 3, 0))

	list.Remove(5)
	list.Remove(-1)
	if list.Len() != 1 {
		t.Errorf("out-of-range Remove must be a no-op, Len = %d", list.Len())
	}
}

func TestList_RemoveShiftsEntries(t *testing.T) {
	imgs := make([]*Image, 4)
	list := &List{}
	for i := range imgs {
		imgs[i] = newTestImage(t, i+1, 1, 3, 0)
		list.Add(imgs[i])
	}

	list.Remove(1)

	want := []*Image{imgs[0], imgs[2], imgs[3]}
	for i, w := range want {
		if list.At(i) != w {
			t.Errorf("entry %d: wrong image after removal", i)
		}
	}
}

func TestList_ShuffleKeepsEntries(t *testing.T) {
	list := &List{}
	seen := map[*Image]bool{}
	for i := 0; i < 5; i++ {
		img := newTestImage(t, 2, 2, 3, i)
		seen[img] = true
		list.Add(img)
	}

	list.Shuffle()

	if list.Len() != 5 {
		t.Fatalf("Len after shuffle: got %d, want 5", list.Len())
	}
	for i := 0; i < 5; i++ {
		if !seen[list.At(i)] {
			t.Fatal("shuffle must permute the original entries")
		}
		delete(seen, list.At(i))
	}
}

func TestList_ShuffleProducesDistinctOrderings(t *testing.T) {
	imgs := make([]*Image, 6)
	index := map[*Image]int{}
	list := &List{}
	for i := range imgs {
		imgs[i] = newTestImage(t, 2, 2, 3, i)
		index[imgs[i]] = i
		list.Add(imgs[i])
	}

	orders := map[string]bool{}
	for run := 0; run < 40; run++ {
		list.Shuffle()
		key := ""
		for i := 0; i < list.Len(); i++ {
			key += fmt.Sprintf("%d,", index[list.At(i)])
		}
		orders[key] = true
	}

	// 40 shuffles of 6 entries landing on a single permutation has
	// probability (1/720)^39; treat it as failure.
	if len(orders) < 2 {
		t.Error("repeated shuffles should produce more than one ordering")
	}
}

func TestList_SortByArea(t *testing.T) {
	big := newTestImage(t, 10, 10, 3, 0)
	mid := newTestImage(t, 5, 5, 3, 0)
	small := newTestImage(t, 2, 2, 3, 0)

	list := &List{}
	list.Add(big)
	list.Add(small)
	list.Add(mid)

	list.Sort(ByArea)

	want := []*Image{small, mid, big}
	for i, w := range want {
		if list.At(i) != w {
			t.Errorf("entry %d: wrong order after sort", i)
		}
	}
}

func TestList_SortIsStable(t *testing.T) {
	// Equal sort keys keep insertion order.
	imgs := make([]*Image, 4)
	list := &List{}
	for i := range imgs {
		imgs[i] = newTestImage(t, 3, 3, 3, i)
		list.Add(imgs[i])
	}

	list.Sort(ByArea)

	for i, w := range imgs {
		if list.At(i) != w {
			t.Errorf("entry %d: stable sort must preserve insertion order for ties", i)
		}
	}
}

func TestList_SortByLuminance(t *testing.T) {
	dark := solidImage(t, 4, 4, 10, 10, 10)
	bright := solidImage(t, 4, 4, 240, 240, 240)

	list := &List{}
	list.Add(bright)
	list.Add(dark)

	list.Sort(ByLuminance)

	if list.At(0) != dark || list.At(1) != bright {
		t.Error("ByLuminance must order darker images first")
	}
}

func TestList_SortByHue(t *testing.T) {
	red := solidImage(t, 4, 4, 200, 10, 10)
	green := solidImage(t, 4, 4, 10, 200, 10)
	blue := solidImage(t, 4, 4, 10, 10, 200)

	list := &List{}
	list.Add(blue)
	list.Add(red)
	list.Add(green)

	list.Sort(ByHue)

	want := []*Image{red, green, blue}
	for i, w := range want {
		if list.At(i) != w {
			t.Errorf("entry %d: wrong hue order", i)
		}
	}
}

func TestList_BatchComposite(t *testing.T) {
	list := &List{}
	list.Add(newTestImage(t, 2, 2, 3, 0))

	// Swap the sole entry for a new one as a single atomic step.
	replacement := newTestImage(t, 4, 4, 3, 1)
	list.Batch(func(b *Batch) {
		old := b.At(0)
		if old == nil {
			t.Fatal("expected an entry")
		}
		b.Remove(0)
		b.Add(replacement)
		if b.Len() != 1 {
			t.Fatalf("Len inside batch: got %d, want 1", b.Len())
		}
	})

	if list.At(0) != replacement {
		t.Error("batched swap did not take effect")
	}
}

func TestList_ConcurrentUse(t *testing.T) {
	list := &List{}
	img := newTestImage(t, 2, 2, 3, 0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				list.Add(img)
				list.At(i)
				list.Shuffle()
				list.Batch(func(b *Batch) {
					n := b.Len()
					b.Add(img)
					if b.Len() != n+1 {
						t.Error("batch saw interleaved mutation")
					}
					b.Remove(b.Len() - 1)
				})
			}
		}()
	}
	wg.Wait()

	if list.Len() != 800 {
		t.Errorf("Len: got %d, want 800", list.Len())
	}
}
