package spans

import (
	"unicode/utf16"
)

// FromUTF16 translates annotations with offsets counted in UTF-16 code units
// into annotations with byte offsets into text.
//
// JVM-based and JavaScript hosts report span offsets in UTF-16 code units. Go
// strings are UTF-8, and Flatten expects byte offsets. Offsets beyond the UTF-16
// length of text, or pointing between the two halves of a surrogate pair, are
// reported as malformed. The input slice is left untouched.
func FromUTF16(text string, annotations []Annotation) ([]Annotation, error) {
	offsets := utf16Offsets(text)
	units := uint64(len(offsets) - 1)
	out := make([]Annotation, len(annotations))
	for i, a := range annotations {
		var reason string
		switch {
		case a.Start > a.End:
			reason = "start after end"
		case a.End > units:
			reason = "end beyond text (UTF-16)"
		case offsets[a.Start] < 0 || offsets[a.End] < 0:
			reason = "offset splits a surrogate pair"
		}
		if reason != "" {
			err := &AnnotationError{Index: i, Annotation: a, Length: units, Reason: reason}
			T().Errorf("spans: %v", err)
			return nil, err
		}
		out[i] = a
		out[i].Start = uint64(offsets[a.Start])
		out[i].End = uint64(offsets[a.End])
	}
	return out, nil
}

// ToUTF16 is the inverse of FromUTF16. Byte offsets have to be valid for text,
// otherwise ErrMalformedAnnotation is returned.
func ToUTF16(text string, annotations []Annotation) ([]Annotation, error) {
	if err := validate(text, annotations); err != nil {
		return nil, err
	}
	units := make([]uint64, len(text)+1)
	u := uint64(0)
	for pos, r := range text {
		units[pos] = u
		u += uint64(utf16.RuneLen(r))
	}
	units[len(text)] = u
	out := make([]Annotation, len(annotations))
	for i, a := range annotations {
		out[i] = a
		out[i].Start, out[i].End = units[a.Start], units[a.End]
	}
	return out, nil
}

// utf16Offsets maps every UTF-16 offset of text, including the end position,
// to a byte offset. Offsets inside a surrogate pair map to -1.
func utf16Offsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for pos, r := range text {
		offsets = append(offsets, pos)
		if utf16.RuneLen(r) == 2 {
			offsets = append(offsets, -1)
		}
	}
	return append(offsets, len(text))
}
