// SPDX-License-Identifier: MIT
// rotutil.go adapts the Booth's-algorithm rotation helpers from lvlath's dfs
// package (lvlath/dfs/utils.go: IndexOf, Reverse, Compare, JoinSig, MinimalRotation)
// to canonicalize cycles for rotation-deduplication (spec.md §4.3, §9).
package paths

import "strings"

// reverseStates returns a new slice containing the elements of s in reverse order.
func reverseStates(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// joinSig concatenates elements with commas, producing a dedup signature.
func joinSig(c []string) string { return strings.Join(c, ",") }

// minimalRotation implements Booth's algorithm: the lexicographically
// minimal rotation of s, in O(n) time.
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}

// canonicalRotation picks the lexicographically minimal forward rotation of
// a cycle, matching the Python reference's rotate_cycle/cycle_exists (which
// only ever rotate forward, never reverse) — a directed 2-VASS cycle and its
// reversal are distinct walks with distinct edges, so reversal is not a
// valid dedup equivalence here. Input/output are OPEN cycles (no repeated
// endpoint); callers close them again if needed.
func canonicalRotation(open []string) []string {
	return minimalRotation(open)
}
