// Package star buckets black-body temperatures into approximate
// Morgan–Keenan spectral classes.
package star

// Class is an approximate Morgan–Keenan spectral class.
type Class int

const (
	ClassUnknown Class = iota
	ClassM
	ClassK
	ClassG
	ClassF
	ClassA
	ClassB
	ClassO
)

var classNames = map[Class]string{
	ClassUnknown: "?",
	ClassM:       "M",
	ClassK:       "K",
	ClassG:       "G",
	ClassF:       "F",
	ClassA:       "A",
	ClassB:       "B",
	ClassO:       "O",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}

	return "?"
}

// Classify maps an effective temperature in Kelvin to a spectral
// class. Temperatures below 2500 K fall outside the ladder and
// return ClassUnknown.
func Classify(tempK float64) Class {
	switch {
	case tempK >= 30000:
		return ClassO
	case tempK >= 10000:
		return ClassB
	case tempK >= 7500:
		return ClassA
	case tempK >= 6000:
		return ClassF
	case tempK >= 5000:
		return ClassG
	case tempK >= 3500:
		return ClassK
	case tempK >= 2500:
		return ClassM
	default:
		return ClassUnknown
	}
}
