package lexicon

import "encoding/binary"

// On-disk layout (little-endian throughout): a flat, mmap-friendly trie
// made of a header of offset/count pairs, a node array and edge array, a
// flat record array, and two variable-length side tables sorted by seq.

const magic = "HTK1"

const headerSize = 4 + 8*2*5 // magic + 5 (offset,count) int64 pairs

type header struct {
	TrieNodesOffset, TrieNodesCount int64
	TrieEdgesOffset, TrieEdgesCount int64
	RecordsOffset, RecordsCount     int64
	BaseFormOffset, BaseFormCount   int64
	KanaOffset, KanaCount           int64
}

func decodeHeader(b []byte) (header, error) {
	var h header
	if len(b) < headerSize {
		return h, errCorrupt("file too small for header")
	}
	if string(b[0:4]) != magic {
		return h, errCorrupt("bad magic")
	}
	o := b[4:]
	fields := []*int64{
		&h.TrieNodesOffset, &h.TrieNodesCount,
		&h.TrieEdgesOffset, &h.TrieEdgesCount,
		&h.RecordsOffset, &h.RecordsCount,
		&h.BaseFormOffset, &h.BaseFormCount,
		&h.KanaOffset, &h.KanaCount,
	}
	for i, f := range fields {
		*f = int64(binary.LittleEndian.Uint64(o[i*8 : i*8+8]))
	}
	return h, nil
}

func (h header) encode() []byte {
	b := make([]byte, headerSize)
	copy(b[0:4], magic)
	o := b[4:]
	fields := []int64{
		h.TrieNodesOffset, h.TrieNodesCount,
		h.TrieEdgesOffset, h.TrieEdgesCount,
		h.RecordsOffset, h.RecordsCount,
		h.BaseFormOffset, h.BaseFormCount,
		h.KanaOffset, h.KanaCount,
	}
	for i, v := range fields {
		binary.LittleEndian.PutUint64(o[i*8:i*8+8], uint64(v))
	}
	return b
}

// trieNode is one node of the flat trie. Its outgoing edges occupy a
// contiguous, byte-sorted run of the global edge array; its records
// (if any, i.e. it terminates at least one surface key) occupy a
// contiguous run of the global record array.
type trieNode struct {
	RecordIdx, RecordLen uint32
	EdgeIdx, EdgeLen     uint32
}

const trieNodeSize = 16

// trieEdge is one outgoing edge: the byte it matches and the child node id.
type trieEdge struct {
	Byte    byte
	_pad    [3]byte
	NodeID  uint32
}

const trieEdgeSize = 8

// record is the 12-byte packed WordEntry payload.
type record struct {
	Seq      uint32
	Cost     int16
	POSID    uint8
	ConjType uint8
	BaseSeq  uint32
}

const recordSize = 12
