package photon

import "sync"

// The reserved words of the language. true and false are routed through
// the same table but surface as BoolLiteral tokens.
var photonKeywords = []struct {
	word string
	kind TokenKind
}{
	{"fn", KwFn},
	{"let", KwLet},
	{"mut", KwMut},
	{"const", KwConst},
	{"if", KwIf},
	{"else", KwElse},
	{"while", KwWhile},
	{"for", KwFor},
	{"loop", KwLoop},
	{"match", KwMatch},
	{"return", KwReturn},
	{"break", KwBreak},
	{"continue", KwContinue},
	{"struct", KwStruct},
	{"enum", KwEnum},
	{"trait", KwTrait},
	{"impl", KwImpl},
	{"import", KwImport},
	{"pub", KwPub},
	{"self", KwSelf},
	{"as", KwAs},
	{"in", KwIn},
	{"type", KwType},
	{"where", KwWhere},
	{"defer", KwDefer},
	{"async", KwAsync},
	{"await", KwAwait},
	{"null", KwNull},
	{"true", BoolLiteral},
	{"false", BoolLiteral},
}

// maxKeywordLen lets lookups reject over-long candidates before hashing.
const maxKeywordLen = 8 // "continue"

// keywordHash is a displacement-based perfect hash over the keyword
// set. Candidates hash into a bucket whose per-bucket seed re-hashes
// them onto a collision-free slot, so recognition is two hashes and one
// string compare.
type keywordHash struct {
	seeds []uint32 // per bucket; 0 marks a bucket no keyword hashes into
	words []string // slot -> keyword, "" for unused slots
	kinds []TokenKind
}

var (
	kwOnce sync.Once
	kwHash keywordHash
)

const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// kwMix hashes word under the given seed. Seed 0 selects the bucket
// hash; displacement seeds start at 1.
func kwMix(seed uint32, word []byte) uint32 {
	h := uint32(fnvOffset) ^ seed*fnvPrime
	for _, c := range word {
		h = (h ^ uint32(c)) * fnvPrime
	}
	return h
}

// buildKeywordHash constructs the table. The build is deterministic:
// buckets are processed largest first with ties broken by index, and
// seeds are tried in increasing order, so every build yields the same
// table.
func buildKeywordHash() keywordHash {
	m := len(photonKeywords)
	nbuckets := m/2 + 1

	buckets := make([][]int, nbuckets)
	for i, kw := range photonKeywords {
		b := int(kwMix(0, []byte(kw.word)) % uint32(nbuckets))
		buckets[b] = append(buckets[b], i)
	}

	order := make([]int, 0, nbuckets)
	for b, keys := range buckets {
		if len(keys) > 0 {
			order = append(order, b)
		}
	}
	// Largest buckets place first while slots are plentiful.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0; j-- {
			a, b := order[j-1], order[j]
			if len(buckets[b]) > len(buckets[a]) || (len(buckets[b]) == len(buckets[a]) && b < a) {
				order[j-1], order[j] = b, a
			} else {
				break
			}
		}
	}

	h := keywordHash{
		seeds: make([]uint32, nbuckets),
		words: make([]string, m),
		kinds: make([]TokenKind, m),
	}
	occupied := make([]bool, m)
	slots := make([]int, 0, 4)

	for _, b := range order {
		keys := buckets[b]
	seedSearch:
		for seed := uint32(1); ; seed++ {
			slots = slots[:0]
			for _, ki := range keys {
				s := int(kwMix(seed, []byte(photonKeywords[ki].word)) % uint32(m))
				if occupied[s] {
					continue seedSearch
				}
				for _, prev := range slots {
					if prev == s {
						continue seedSearch
					}
				}
				slots = append(slots, s)
			}
			for i, ki := range keys {
				s := slots[i]
				occupied[s] = true
				h.words[s] = photonKeywords[ki].word
				h.kinds[s] = photonKeywords[ki].kind
			}
			h.seeds[b] = seed
			break
		}
	}

	return h
}

// lookupKeyword recognizes word against the keyword set without
// allocating. The second result is false when word is not reserved.
func lookupKeyword(word []byte) (TokenKind, bool) {
	if len(word) == 0 || len(word) > maxKeywordLen {
		return Invalid, false
	}
	kwOnce.Do(func() { kwHash = buildKeywordHash() })

	b := kwMix(0, word) % uint32(len(kwHash.seeds))
	seed := kwHash.seeds[b]
	if seed == 0 {
		return Invalid, false
	}
	slot := kwMix(seed, word) % uint32(len(kwHash.words))
	if !bytesEqualString(word, kwHash.words[slot]) {
		return Invalid, false
	}
	return kwHash.kinds[slot], true
}

// KeywordKind recognizes text against the fixed keyword set in O(1).
// It reports the matching kind, or false when text is an ordinary
// identifier.
func KeywordKind(text string) (TokenKind, bool) {
	return lookupKeyword([]byte(text))
}

func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
