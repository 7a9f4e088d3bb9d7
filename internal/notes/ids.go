package notes

// idFactory allocates note ids as one past the largest id seen.
type idFactory struct {
	max  uint64
	seen bool
}

func (f *idFactory) next() uint64 {
	if !f.seen {
		return 1
	}
	return f.max + 1
}

func (f *idFactory) observe(id uint64) {
	if !f.seen || id > f.max {
		f.max = id
		f.seen = true
	}
}

// release gives id back when it was the largest one in use, so the next
// allocation reuses it. remaining are the ids still present.
func (f *idFactory) release(id uint64, remaining []uint64) {
	if !f.seen || id != f.max {
		return
	}
	f.reset()
	for _, v := range remaining {
		f.observe(v)
	}
}

func (f *idFactory) reset() {
	f.max = 0
	f.seen = false
}
