// Package lexiconbuild serializes a small set of word entries into the
// on-disk lexicon format so package tests can synthesize tiny artifacts
// instead of shipping the real multi-megabyte dictionary. It is used only
// from _test.go files; the production artifact comes from the off-line
// builder, which is a separate tool.
package lexiconbuild

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/himotoki/himotoki/internal/model"
)

// Entry is one lexicon record to serialize. Entries sharing a Surface are
// stored adjacently in the order given, which is the tie-break order the
// lexicon reports them in.
type Entry struct {
	Surface  string
	Seq      uint32
	Cost     int16
	POS      model.POS
	ConjType uint8
	BaseSeq  uint32
}

type buildNode struct {
	children map[byte]*buildNode
	order    []byte
	records  []Entry
}

func newBuildNode() *buildNode {
	return &buildNode{children: make(map[byte]*buildNode)}
}

// Write builds the trie over the entries' surfaces and writes the full
// artifact (header, node and edge arrays, record array, and the two
// seq-keyed side tables) to path.
func Write(path string, entries []Entry, baseForms, kana map[uint32]string) error {
	root := newBuildNode()
	for _, e := range entries {
		n := root
		for i := 0; i < len(e.Surface); i++ {
			b := e.Surface[i]
			child, ok := n.children[b]
			if !ok {
				child = newBuildNode()
				n.children[b] = child
				n.order = append(n.order, b)
			}
			n = child
		}
		n.records = append(n.records, e)
	}

	// Flatten depth-first with byte-sorted edges, root as node 0.
	type flatNode struct {
		node                 *buildNode
		recordIdx, recordLen uint32
		edgeIdx, edgeLen     uint32
	}
	var flat []*flatNode
	ids := make(map[*buildNode]uint32)
	var assign func(n *buildNode)
	assign = func(n *buildNode) {
		ids[n] = uint32(len(flat))
		flat = append(flat, &flatNode{node: n})
		sort.Slice(n.order, func(i, j int) bool { return n.order[i] < n.order[j] })
		for _, b := range n.order {
			assign(n.children[b])
		}
	}
	assign(root)

	var records []Entry
	type edge struct {
		b      byte
		nodeID uint32
	}
	var edges []edge
	for _, fn := range flat {
		fn.recordIdx = uint32(len(records))
		fn.recordLen = uint32(len(fn.node.records))
		records = append(records, fn.node.records...)
		fn.edgeIdx = uint32(len(edges))
		fn.edgeLen = uint32(len(fn.node.order))
		for _, b := range fn.node.order {
			edges = append(edges, edge{b: b, nodeID: ids[fn.node.children[b]]})
		}
	}

	var body bytes.Buffer

	const headerSize = 4 + 8*10
	nodesOffset := int64(headerSize)
	for _, fn := range flat {
		for _, v := range []uint32{fn.recordIdx, fn.recordLen, fn.edgeIdx, fn.edgeLen} {
			binary.Write(&body, binary.LittleEndian, v)
		}
	}
	edgesOffset := nodesOffset + int64(body.Len())
	for _, e := range edges {
		body.WriteByte(e.b)
		body.Write([]byte{0, 0, 0})
		binary.Write(&body, binary.LittleEndian, e.nodeID)
	}
	recordsOffset := nodesOffset + int64(body.Len())
	for _, r := range records {
		binary.Write(&body, binary.LittleEndian, r.Seq)
		binary.Write(&body, binary.LittleEndian, r.Cost)
		body.WriteByte(uint8(r.POS))
		body.WriteByte(r.ConjType)
		binary.Write(&body, binary.LittleEndian, r.BaseSeq)
	}
	baseOffset := nodesOffset + int64(body.Len())
	baseCount := writeSideTable(&body, baseForms)
	kanaOffset := nodesOffset + int64(body.Len())
	kanaCount := writeSideTable(&body, kana)

	var out bytes.Buffer
	out.WriteString("HTK1")
	for _, v := range []int64{
		nodesOffset, int64(len(flat)),
		edgesOffset, int64(len(edges)),
		recordsOffset, int64(len(records)),
		baseOffset, baseCount,
		kanaOffset, kanaCount,
	} {
		binary.Write(&out, binary.LittleEndian, v)
	}
	out.Write(body.Bytes())

	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing lexicon artifact: %w", err)
	}
	return nil
}

func writeSideTable(w *bytes.Buffer, table map[uint32]string) int64 {
	seqs := make([]uint32, 0, len(table))
	for s := range table {
		seqs = append(seqs, s)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	for _, s := range seqs {
		binary.Write(w, binary.LittleEndian, s)
		binary.Write(w, binary.LittleEndian, uint16(len(table[s])))
		w.WriteString(table[s])
	}
	return int64(len(seqs))
}
