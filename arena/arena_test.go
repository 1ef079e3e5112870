package arena

import (
	"testing"
)

type pair struct {
	a, b int64
}

func TestAlloc_ReadWriteFidelity(t *testing.T) {
	a := New(DefaultConfig())

	p1 := Alloc(a, pair{1, 2})
	p2 := Alloc(a, pair{3, 4})

	if p1.a != 1 || p1.b != 2 {
		t.Fatalf("p1 corrupted: %+v", *p1)
	}
	if p2.a != 3 || p2.b != 4 {
		t.Fatalf("p2 corrupted: %+v", *p2)
	}

	p1.a = 100
	if p1.a != 100 {
		t.Fatalf("mutation through returned pointer did not stick")
	}
	if p2.a != 3 {
		t.Fatalf("mutating p1 clobbered p2: %+v", *p2)
	}
}

func TestAlloc_StableAcrossManyAllocations(t *testing.T) {
	a := New(DefaultConfig().WithDefaultBlockSize(64))

	const n = 2000
	ptrs := make([]*pair, n)
	for i := 0; i < n; i++ {
		ptrs[i] = Alloc(a, pair{int64(i), int64(i * 2)})
	}

	for i, p := range ptrs {
		if p.a != int64(i) || p.b != int64(i*2) {
			t.Fatalf("ptr %d corrupted after later allocations: %+v", i, *p)
		}
	}

	if a.Blocks() <= 1 {
		t.Fatalf("expected allocation to span multiple blocks, got %d", a.Blocks())
	}
}

func TestAlloc_OversizedValueGetsOwnBlock(t *testing.T) {
	a := New(DefaultConfig().WithDefaultBlockSize(16))

	type big struct {
		data [1000]byte
	}
	v := Alloc(a, big{})
	v.data[0] = 7
	v.data[999] = 9
	if v.data[0] != 7 || v.data[999] != 9 {
		t.Fatalf("oversized allocation corrupted")
	}
	if a.Blocks() != 2 {
		t.Fatalf("expected the oversized value to get a block of its own, got %d blocks", a.Blocks())
	}
}

func TestAlloc_MixedTypesAlignment(t *testing.T) {
	a := New(DefaultConfig())

	b := Alloc(a, byte(0xAB))
	i := Alloc(a, int64(0x1122334455667788))
	s := Alloc(a, "hello")

	if *b != 0xAB {
		t.Fatalf("byte corrupted")
	}
	if *i != 0x1122334455667788 {
		t.Fatalf("int64 corrupted, misaligned access likely: %x", *i)
	}
	if *s != "hello" {
		t.Fatalf("string corrupted: %q", *s)
	}
}

func TestNew_InvalidConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid config")
		}
	}()
	New(Config{DefaultBlockSize: -1})
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if err := (Config{DefaultBlockSize: 0}).Validate(); err == nil {
		t.Fatalf("zero block size should fail validation")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1023, 1024}, {1024, 1024},
	}
	for _, c := range cases {
		if got := nextPowerOfTwo(c.in); got != c.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
