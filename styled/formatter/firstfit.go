package formatter

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Words are the segments between UAX#14 break opportunities, with trailing
spaces included. A segment ending in a newline forces a break.
*/
func firstFit(text string, linewidth int, context *uax11.Context) []uint64 {
	//
	if len(text) == 0 {
		return nil
	}
	if linewidth <= 0 {
		return mandatoryBreaks(text)
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(text))
	spaceleft := linewidth
	breaks := make([]uint64, 0, 20)
	prevpos, lastbreak := 0, 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(strings.TrimRight(frag, "\r\n"))
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				prevpos += len(frag)
				breaks = append(breaks, uint64(prevpos))
				T().Debugf("break @ %d", prevpos)
				lastbreak = prevpos
				spaceleft = linewidth
				continue
			}
			// fragment overshoots line
			breaks = append(breaks, uint64(prevpos))
			T().Debugf("break @ %d", prevpos)
			lastbreak = prevpos
			spaceleft = linewidth - fraglen
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
		}
		linestart = false
		prevpos += len(frag)
		if strings.HasSuffix(frag, "\n") {
			breaks = append(breaks, uint64(prevpos))
			T().Debugf("mandatory break @ %d", prevpos)
			lastbreak = prevpos
			spaceleft = linewidth
			linestart = true
		}
	}
	if lastbreak < len(text) { // we have a partial line to consume
		breaks = append(breaks, uint64(len(text)))
		T().Debugf("break @ %d", len(text))
	}
	return breaks
}

// mandatoryBreaks breaks text after every newline only, for output without
// line wrapping.
func mandatoryBreaks(text string) []uint64 {
	var breaks []uint64
	for pos := strings.IndexByte(text, '\n'); pos >= 0; {
		breaks = append(breaks, uint64(pos+1))
		next := strings.IndexByte(text[pos+1:], '\n')
		if next < 0 {
			break
		}
		pos += next + 1
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] < uint64(len(text)) {
		breaks = append(breaks, uint64(len(text)))
	}
	return breaks
}
