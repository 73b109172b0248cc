package dns

import "encoding/binary"

// writer accumulates a DNS packet in memory. Serialisation needs
// backward patching (rdlength reservation, header counters) that a
// strictly sequential sink cannot provide, so the builder owns a
// growable buffer and exposes it (Bytes) only once
// complete. A compression dictionary mapping a name's label-suffix
// wire-encoding to the byte offset it was first written at is carried
// alongside, shared across the whole packet.
type writer struct {
	buf      []byte
	pooled   *[]byte
	compress bool
	dict     map[string]int
}

// newWriter draws its scratch buffer from the shared pool rather than
// allocating fresh, since every packet built or re-encoded passes
// through here. release returns it once the caller has copied out the
// final bytes.
func newWriter(compress bool) *writer {
	pooled := GetBuffer(SmallBufferSize)
	w := &writer{buf: *pooled, pooled: pooled, compress: compress}
	if compress {
		w.dict = make(map[string]int)
	}
	return w
}

// release returns the writer's scratch buffer to the pool. Callers
// must have already copied out anything they need from Bytes().
func (w *writer) release() {
	PutBuffer(w.pooled)
	w.pooled = nil
	w.buf = nil
}

// offset returns the current write position, i.e. the byte offset the
// next write will land at.
func (w *writer) offset() int {
	return len(w.buf)
}

func (w *writer) writeU8(v uint8) error {
	w.buf = append(w.buf, v)
	return nil
}

func (w *writer) writeU16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return nil
}

func (w *writer) writeU32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return nil
}

func (w *writer) writeI32(v int32) error {
	return w.writeU32(uint32(v))
}

func (w *writer) writeBytes(b []byte) error {
	w.buf = append(w.buf, b...)
	return nil
}

// reserveU16 appends two placeholder bytes and returns their offset,
// to be filled in later via patchU16 once the following content's
// length is known (used for rdlength).
func (w *writer) reserveU16() int {
	pos := len(w.buf)
	w.buf = append(w.buf, 0, 0)
	return pos
}

func (w *writer) patchU16(pos int, v uint16) {
	binary.BigEndian.PutUint16(w.buf[pos:pos+2], v)
}

// writeName emits a name, compressing against the shared dictionary
// when the writer was built with compress=true and forceUncompressed
// is false. SVCB/HTTPS targets, SRV targets, RRSIG signers and NSEC
// next-names pass forceUncompressed=true per their RFCs.
func (w *writer) writeName(n Name, forceUncompressed bool) error {
	if !w.compress || forceUncompressed {
		return n.writeUncompressed(w)
	}
	return w.writeNameCompressed(n)
}

func (w *writer) writeNameCompressed(n Name) error {
	labels := n.Labels()
	for k := 0; k < len(labels); k++ {
		key := n.suffixKey(k)
		if pos, ok := w.dict[key]; ok && pos < 0x4000 {
			// Emit labels[0:k] literally, then a pointer to pos.
			for _, label := range labels[:k] {
				if err := w.writeU8(uint8(len(label))); err != nil {
					return err
				}
				if err := w.writeBytes(label); err != nil {
					return err
				}
			}
			return w.writeU16(0xC000 | uint16(pos))
		}
	}

	// No reusable suffix: emit every label, recording each suffix's
	// offset as we go (future names may reference any of them),
	// skipping registration once the offset no longer fits in 14 bits.
	for k, label := range labels {
		if pos := w.offset(); pos < 0x4000 {
			w.dict[n.suffixKey(k)] = pos
		}
		if err := w.writeU8(uint8(len(label))); err != nil {
			return err
		}
		if err := w.writeBytes(label); err != nil {
			return err
		}
	}
	return w.writeU8(0)
}

// Bytes returns the accumulated packet bytes.
func (w *writer) Bytes() []byte {
	return w.buf
}
