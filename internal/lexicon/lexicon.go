// Package lexicon implements the prefix-indexed, memory-mapped dictionary
// store: exact surface lookup, allocation-free prefix existence, and
// prefix enumeration, backed by a flat on-disk trie plus two seq-keyed
// side tables for dictionary-form text and kana readings.
//
// The Lexicon is a process-wide, lazily-loaded, explicitly-unloaded
// singleton. Load performs a mutex-guarded transition from unloaded to
// loaded; once loaded, every read method is lock-free, sharing the
// underlying mmap across all callers and goroutines. Unload is not safe
// to call concurrently with in-flight reads; that is a programmer error,
// not a condition this package guards against at runtime.
package lexicon

import (
	"sort"
	"sync"

	"github.com/himotoki/himotoki/internal/model"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is an opened dictionary artifact.
type Lexicon struct {
	mf         *mappedFile
	prefixTrie *patricia.Trie
}

var (
	singletonMu sync.Mutex
	singleton   *Lexicon
)

// Load opens the artifact at path, or returns the already-loaded singleton
// if one exists. The path of the first successful call wins for the
// lifetime of the process.
func Load(path string) (*Lexicon, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return singleton, nil
	}
	mf, err := loadMappedFile(path)
	if err != nil {
		return nil, err
	}
	lex := &Lexicon{mf: mf}
	lex.buildPrefixIndex()
	singleton = lex
	return lex, nil
}

// IsLoaded reports whether the singleton is currently loaded.
func IsLoaded() bool {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	return singleton != nil
}

// Unload releases the current singleton, if any. Callers must ensure no
// other goroutine is still using a *Lexicon obtained from Load.
func Unload() error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return nil
	}
	err := singleton.mf.close()
	singleton = nil
	return err
}

// buildPrefixIndex walks the flat trie once, inserting every complete
// surface key into an in-memory Patricia trie. It backs PrefixItems'
// subtree enumeration; exact lookup and prefix existence go straight to
// the flat trie.
func (l *Lexicon) buildPrefixIndex() {
	l.prefixTrie = patricia.NewTrie()
	if len(l.mf.nodes) == 0 {
		return
	}
	var walk func(nodeIdx uint32, path []byte)
	walk = func(nodeIdx uint32, path []byte) {
		n := l.mf.nodes[nodeIdx]
		if n.RecordLen > 0 {
			key := make([]byte, len(path))
			copy(key, path)
			l.prefixTrie.Insert(patricia.Prefix(key), nodeIdx)
		}
		for i := uint32(0); i < n.EdgeLen; i++ {
			e := l.mf.edges[n.EdgeIdx+i]
			walk(e.NodeID, append(path, e.Byte))
		}
	}
	walk(0, nil)
}

// Lookup returns every record for the exact surface key, or an empty
// (never nil-vs-error) slice if the key is absent.
func (l *Lexicon) Lookup(surface string) []model.WordEntry {
	nodeIdx, ok := l.descend(surface)
	if !ok {
		return nil
	}
	n := l.mf.nodes[nodeIdx]
	if n.RecordLen == 0 {
		return nil
	}
	out := make([]model.WordEntry, 0, n.RecordLen)
	for i := uint32(0); i < n.RecordLen; i++ {
		r := l.mf.records[n.RecordIdx+i]
		out = append(out, model.WordEntry{
			Surface:  surface,
			Seq:      r.Seq,
			Cost:     r.Cost,
			POSID:    model.POS(r.POSID),
			ConjType: r.ConjType,
			BaseSeq:  r.BaseSeq,
		})
	}
	return out
}

// HasPrefix reports whether any surface key in the lexicon begins with
// prefix. It descends the flat trie byte by byte, so it is O(|prefix|)
// and allocation-free; the lattice builder probes it for every candidate
// span length at every start position.
func (l *Lexicon) HasPrefix(prefix string) bool {
	if len(l.mf.nodes) == 0 {
		return false
	}
	_, ok := l.descend(prefix)
	return ok
}

// PrefixItem is one (key, records) pair returned by PrefixItems.
type PrefixItem struct {
	Key     string
	Records []model.WordEntry
}

// PrefixItems enumerates every surface key beginning with prefix, together
// with its records, in ascending key order.
func (l *Lexicon) PrefixItems(prefix string) []PrefixItem {
	var items []PrefixItem
	_ = l.prefixTrie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		key := string(p)
		items = append(items, PrefixItem{Key: key, Records: l.Lookup(key)})
		return nil
	})
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

// DictFormText returns the dictionary-form surface text for seq, or ""
// if seq is absent from the side table; callers fall back to the
// segment's own surface.
func (l *Lexicon) DictFormText(seq uint32) string { return l.mf.baseForm[seq] }

// KanaReading returns the kana reading for seq, or "" if absent.
func (l *Lexicon) KanaReading(seq uint32) string { return l.mf.kana[seq] }

// descend walks the flat trie byte by byte, binary-searching each node's
// sorted outgoing edges. O(|s|), no allocation.
func (l *Lexicon) descend(s string) (uint32, bool) {
	nodeIdx := uint32(0)
	for i := 0; i < len(s); i++ {
		n := l.mf.nodes[nodeIdx]
		if n.EdgeLen == 0 {
			return 0, false
		}
		edges := l.mf.edges[n.EdgeIdx : n.EdgeIdx+n.EdgeLen]
		target := s[i]
		lo, hi := 0, len(edges)
		for lo < hi {
			mid := (lo + hi) / 2
			if edges[mid].Byte < target {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo >= len(edges) || edges[lo].Byte != target {
			return 0, false
		}
		nodeIdx = edges[lo].NodeID
	}
	return nodeIdx, true
}
