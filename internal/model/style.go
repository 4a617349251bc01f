package model

// Delimiter identifies one of the comment delimiter pairs a marker may use.
type Delimiter int

// Supported delimiter pairs.
const (
	DelimiterML      Delimiter = iota // (* *)
	DelimiterC                        // /* */
	DelimiterHaskell                  // {- -}
	DelimiterRacket                   // #| |#
	DelimiterPython                   // """ """
)

// Delimiters lists every delimiter pair in matching order.
var Delimiters = []Delimiter{DelimiterML, DelimiterC, DelimiterHaskell, DelimiterRacket, DelimiterPython}

var delimiterPairs = map[Delimiter][2]string{
	DelimiterML:      {"(*", "*)"},
	DelimiterC:       {"/*", "*/"},
	DelimiterHaskell: {"{-", "-}"},
	DelimiterRacket:  {"#|", "|#"},
	DelimiterPython:  {`"""`, `"""`},
}

// Open returns the opening comment token.
func (d Delimiter) Open() string {
	return delimiterPairs[d][0]
}

// Close returns the closing comment token.
func (d Delimiter) Close() string {
	return delimiterPairs[d][1]
}

// Nests reports whether the host language nests comments of this pair, so an
// inactive block may hold balanced inner comments.
func (d Delimiter) Nests() bool {
	return d == DelimiterML || d == DelimiterHaskell || d == DelimiterRacket
}

func (d Delimiter) String() string {
	return d.Open() + " " + d.Close()
}

// Mode characters distinguish mutation markers from ordinary comments.
const (
	ModeBang byte = '!'
	ModePipe byte = '|'
)

// Modes lists the accepted mode characters.
var Modes = []byte{ModeBang, ModePipe}

// Style is the delimiter pair and mode character a marker was written with.
type Style struct {
	Delimiter Delimiter
	Mode      byte
}

// BodyOpen is the token that opens an inactive body, e.g. "(*!".
func (s Style) BodyOpen() string {
	return s.Delimiter.Open() + string(s.Mode)
}

// VariantOpen is the token that opens a variant header, e.g. "(*!!".
func (s Style) VariantOpen() string {
	return s.BodyOpen() + string(s.Mode)
}

// Close is the closing comment token.
func (s Style) Close() string {
	return s.Delimiter.Close()
}
