package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Range is a character sub-interval of a control's content that character
// formatting is applied to. The interval is half-open and counts characters
// across all runs of the content, matching the offsets produced by the
// markup parser. Applying a property splits runs at the interval boundaries
// so that untouched characters keep their formatting.
type Range struct {
	content     *etree.Element
	start, stop int
}

// SetBounds selects the half-open character interval [start, stop).
func (r *Range) SetBounds(start, stop int) error {
	if start < 0 || stop < start {
		return fmt.Errorf("invalid range bounds [%d,%d)", start, stop)
	}
	r.start, r.stop = start, stop
	return nil
}

// SetBold turns bold on or off over the range.
func (r *Range) SetBold(on bool) error {
	return r.apply(func(rPr *etree.Element) {
		setToggleProp(rPr, "w:b", on)
	})
}

// SetItalic turns italics on or off over the range.
func (r *Range) SetItalic(on bool) error {
	return r.apply(func(rPr *etree.Element) {
		setToggleProp(rPr, "w:i", on)
	})
}

// SetFontSize sets the font size in points over the range. OOXML stores
// sizes in half-points.
func (r *Range) SetFontSize(points int) error {
	if points <= 0 {
		return fmt.Errorf("invalid font size %d", points)
	}
	return r.apply(func(rPr *etree.Element) {
		setValProp(rPr, "w:sz", strconv.Itoa(points*2))
		setValProp(rPr, "w:szCs", strconv.Itoa(points*2))
	})
}

// apply runs set against the run properties of every run covered by the
// range, splitting partially covered runs first.
func (r *Range) apply(set func(rPr *etree.Element)) error {
	if r.start < 0 || r.stop < 0 {
		return fmt.Errorf("range bounds were not set")
	}
	if r.start == r.stop {
		return nil
	}

	pos := 0
	runs := r.content.FindElements(".//w:r")
	for i := 0; i < len(runs); i++ {
		run := runs[i]
		length := runLength(run)
		runStart, runEnd := pos, pos+length
		pos = runEnd

		if runEnd <= r.start || runStart >= r.stop {
			continue
		}

		if r.start > runStart {
			// split off the uncovered head, continue with the tail
			tail := splitRun(run, r.start-runStart)
			runs = append(runs[:i+1], append([]*etree.Element{tail}, runs[i+1:]...)...)
			pos = runStart + (r.start - runStart)
			continue
		}
		if r.stop < runEnd {
			// covered head, uncovered tail
			splitRun(run, r.stop-runStart)
			pos = runStart + (r.stop - runStart)
			set(runProperties(run))
			break
		}

		set(runProperties(run))
	}

	if pos < r.stop {
		return fmt.Errorf("range [%d,%d) extends past content end %d", r.start, r.stop, pos)
	}
	return nil
}

// runLength returns the number of characters held by the run.
func runLength(run *etree.Element) int {
	n := 0
	for _, t := range run.FindElements(".//w:t") {
		n += len([]rune(t.Text()))
	}
	return n
}

// splitRun splits run at the given character offset within its text and
// returns the new run holding the characters from offset on. Run properties
// are duplicated on both halves. The run must hold a single w:t.
func splitRun(run *etree.Element, offset int) *etree.Element {
	t := run.SelectElement("w:t")
	if t == nil {
		return run
	}
	runes := []rune(t.Text())
	if offset <= 0 || offset >= len(runes) {
		return run
	}

	tail := run.Copy()
	t.SetText(string(runes[:offset]))
	preserveSpace(t)
	if tt := tail.SelectElement("w:t"); tt != nil {
		tt.SetText(string(runes[offset:]))
		preserveSpace(tt)
	}
	run.Parent().InsertChildAt(run.Index()+1, tail)
	return tail
}

// runProperties returns the run's w:rPr, creating it as the first child
// when missing.
func runProperties(run *etree.Element) *etree.Element {
	if rPr := run.SelectElement("w:rPr"); rPr != nil {
		return rPr
	}
	rPr := etree.NewElement("w:rPr")
	run.InsertChildAt(0, rPr)
	return rPr
}

// setToggleProp sets a boolean run property like w:b or w:i. Presence means
// on, an explicit w:val="0" means off.
func setToggleProp(rPr *etree.Element, tag string, on bool) {
	el := rPr.SelectElement(tag)
	if el == nil {
		el = rPr.CreateElement(tag)
	}
	el.RemoveAttr("w:val")
	if !on {
		el.CreateAttr("w:val", "0")
	}
}

// setValProp sets a single-value run property like w:sz.
func setValProp(rPr *etree.Element, tag, val string) {
	el := rPr.SelectElement(tag)
	if el == nil {
		el = rPr.CreateElement(tag)
	}
	el.RemoveAttr("w:val")
	el.CreateAttr("w:val", val)
}
