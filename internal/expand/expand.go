// Package expand runs the breadth-first candidate expansion shared by the
// noun and verb parsers.
package expand

// Stage maps one candidate to the candidates it can stand for. A stage is
// expected to return the unmodified candidate as well, so that "no affix at
// this position" stays a possibility.
type Stage[C any] func(C) []C

// Run feeds the seed through every stage in order. Each stage is applied to
// every candidate produced by the previous one; repeated candidates are
// dropped, and the first occurrence keeps its position.
func Run[C comparable](seed C, stages ...Stage[C]) []C {
	worklist := []C{seed}
	for _, stage := range stages {
		seen := make(map[C]struct{}, len(worklist))
		next := make([]C, 0, len(worklist))
		for _, c := range worklist {
			for _, out := range stage(c) {
				if _, dup := seen[out]; dup {
					continue
				}
				seen[out] = struct{}{}
				next = append(next, out)
			}
		}
		worklist = next
	}
	return worklist
}
