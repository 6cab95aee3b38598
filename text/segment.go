package text

import "golang.org/x/text/unicode/bidi"

// segment is a contiguous run of text with a single direction.
type segment struct {
	text string
	rtl  bool
}

// segmentText splits a string into directional runs using the Unicode
// bidirectional algorithm, in visual order. A pure-LTR string comes
// back as a single run.
func segmentText(text string) []segment {
	if text == "" {
		return nil
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return []segment{{text: text}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []segment{{text: text}}
	}

	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		segs = append(segs, segment{
			text: run.String(),
			rtl:  run.Direction() == bidi.RightToLeft,
		})
	}
	return segs
}
