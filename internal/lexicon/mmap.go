package lexicon

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

// mappedFile holds the memory-mapped artifact and the zero-copy slices
// carved out of it. Nothing here is copied onto the Go heap except the two
// small side tables, which are variable-length and decoded once at load.
type mappedFile struct {
	region mmap.MMap

	nodes   []trieNode
	edges   []trieEdge
	records []record

	baseForm map[uint32]string
	kana     map[uint32]string
}

func loadMappedFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errCorrupt("mmap: " + err.Error())
	}

	h, err := decodeHeader(region)
	if err != nil {
		_ = region.Unmap()
		return nil, err
	}
	if err := checkBounds(h, int64(len(region))); err != nil {
		_ = region.Unmap()
		return nil, err
	}

	mf := &mappedFile{region: region}

	mf.nodes = castSlice[trieNode](region, h.TrieNodesOffset, h.TrieNodesCount, trieNodeSize)
	mf.edges = castSlice[trieEdge](region, h.TrieEdgesOffset, h.TrieEdgesCount, trieEdgeSize)
	mf.records = castSlice[record](region, h.RecordsOffset, h.RecordsCount, recordSize)

	mf.baseForm, err = decodeSideTable(region, h.BaseFormOffset, h.BaseFormCount)
	if err != nil {
		_ = region.Unmap()
		return nil, err
	}
	mf.kana, err = decodeSideTable(region, h.KanaOffset, h.KanaCount)
	if err != nil {
		_ = region.Unmap()
		return nil, err
	}

	return mf, nil
}

func (mf *mappedFile) close() error {
	mf.nodes = nil
	mf.edges = nil
	mf.records = nil
	return mf.region.Unmap()
}

// checkBounds rejects a header whose arrays would read past the mapping,
// so a truncated or size-mismatched artifact fails load instead of
// faulting later.
func checkBounds(h header, size int64) error {
	sections := []struct {
		name          string
		offset, count int64
		elemSize      int64
	}{
		{"trie nodes", h.TrieNodesOffset, h.TrieNodesCount, trieNodeSize},
		{"trie edges", h.TrieEdgesOffset, h.TrieEdgesCount, trieEdgeSize},
		{"records", h.RecordsOffset, h.RecordsCount, recordSize},
		{"base forms", h.BaseFormOffset, h.BaseFormCount, 1},
		{"kana readings", h.KanaOffset, h.KanaCount, 1},
	}
	for _, s := range sections {
		if s.offset < 0 || s.count < 0 || s.offset > size {
			return errCorrupt(s.name + " section out of bounds")
		}
		if s.offset+s.count*s.elemSize > size {
			return errCorrupt(s.name + " section overruns file")
		}
	}
	return nil
}

// castSlice builds a zero-copy []T view over
// region[offset:offset+count*elemSize].
func castSlice[T any](region []byte, offset, count int64, elemSize int) []T {
	if count == 0 {
		return nil
	}
	b := region[offset : offset+count*int64(elemSize)]
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), int(count))
}

// decodeSideTable reads a {Seq uint32; TextLen uint16; TextBytes} table
// sequentially; these are small enough (seq->string) that a one-time copy
// into a map at load is the right tradeoff against zero-copy complexity.
func decodeSideTable(region []byte, offset, count int64) (map[uint32]string, error) {
	out := make(map[uint32]string, count)
	r := bytes.NewReader(region[offset:])
	for i := int64(0); i < count; i++ {
		var seq uint32
		var textLen uint16
		if err := binary.Read(r, binary.LittleEndian, &seq); err != nil {
			return nil, errCorrupt("side table seq: " + err.Error())
		}
		if err := binary.Read(r, binary.LittleEndian, &textLen); err != nil {
			return nil, errCorrupt("side table len: " + err.Error())
		}
		buf := make([]byte, textLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errCorrupt("side table text: " + err.Error())
		}
		out[seq] = string(buf)
	}
	return out, nil
}
