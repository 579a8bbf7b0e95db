package main

import (
	"bytes"
	"encoding/binary"
	"errors"

	"nft_market/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeUint64(uint64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress reuses the string path so address encoding stays in one place.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

var errShortRecord = errors.New("record truncated")

type binReader struct {
	data []byte
	pos  int
}

func newReader(data string) *binReader { return &binReader{data: []byte(data)} }

func (r *binReader) readBool() (bool, error) {
	if r.pos+1 > len(r.data) {
		return false, errShortRecord
	}
	v := r.data[r.pos] == 1
	r.pos++
	return v, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errShortRecord
	}
	v := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *binReader) readVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errShortRecord
	}
	r.pos += n
	return v, nil
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readUint64()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errShortRecord
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// -----------------------------------------------------------------------------
// Record Codecs
// -----------------------------------------------------------------------------

// encodeToken serializes a token record for the host kv.
func encodeToken(tok *Token) string {
	w := newWriter()
	w.writeUint64(tok.ID)
	w.writeAddress(tok.Owner)
	w.writeAddress(tok.Creator)
	w.writeString(tok.URI)
	return string(w.bytes())
}

// decodeToken rebuilds a token record, erroring on truncated data.
func decodeToken(data string) (*Token, error) {
	r := newReader(data)
	var tok Token
	var err error
	if tok.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if tok.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if tok.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if tok.URI, err = r.readString(); err != nil {
		return nil, err
	}
	return &tok, nil
}

// encodeListing serializes a listing record for the host kv.
func encodeListing(lst *Listing) string {
	w := newWriter()
	w.writeUint64(lst.ID)
	w.writeUint64(lst.TokenID)
	w.writeAddress(lst.Owner)
	w.writeAmount(lst.Price)
	w.writeBool(lst.Active)
	return string(w.bytes())
}

// decodeListing rebuilds a listing record, erroring on truncated data.
func decodeListing(data string) (*Listing, error) {
	r := newReader(data)
	var lst Listing
	var err error
	if lst.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if lst.TokenID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if lst.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if lst.Price, err = r.readAmount(); err != nil {
		return nil, err
	}
	if lst.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	return &lst, nil
}
