package feature

// Labels fixes the ordering of design matrix columns so each fitted model
// coefficient can be traced back to the feature that produced it.
type Labels struct {
	idx    map[string]int
	labels []Feature
}

func NewLabels(feats []Feature) *Labels {
	idx := make(map[string]int, len(feats))
	for i, f := range feats {
		idx[f.String()] = i
	}
	return &Labels{
		idx:    idx,
		labels: feats,
	}
}

// Len returns the number of tracked features.
func (l *Labels) Len() int {
	return len(l.labels)
}

// Labels returns a copy of the tracked features in column order.
func (l *Labels) Labels() []Feature {
	out := make([]Feature, len(l.labels))
	copy(out, l.labels)
	return out
}

// Index returns the column position of the given feature label.
func (l *Labels) Index(label Feature) (int, bool) {
	idx, exists := l.idx[label.String()]
	if !exists {
		return -1, false
	}
	return idx, true
}
