// Package faux generates random test data: strings of various character
// classes, e-mail addresses, network addresses and URLs.
package faux

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gravitational/trace"
)

// Kind names a class of characters used to generate strings
type Kind string

const (
	Alpha        Kind = "alpha"
	Alphanumeric Kind = "alphanumeric"
	Numeric      Kind = "numeric"
	Latin1       Kind = "latin1"
	UTF8         Kind = "utf8"
	CJK          Kind = "cjk"
	HTML         Kind = "html"
)

// Kinds lists all string kinds in a stable order
var Kinds = []Kind{Alpha, Alphanumeric, CJK, HTML, Latin1, Numeric, UTF8}

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	letters   = lowercase + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
)

// MinHTMLLength is the shortest html string: a one letter text in the shortest tag
const MinHTMLLength = len("<a></a>") + 1

var htmlTags = []string{"a", "b", "i", "p", "em", "li", "ul", "div", "span", "strong"}

var tlds = []string{"com", "net", "org", "biz", "info"}

// Generator produces random values. A Generator is safe for concurrent use
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a generator seeded with seed
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

var std = New(time.Now().UnixNano())

// Default returns the process-wide generator
func Default() *Generator {
	return std
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

func (g *Generator) float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

// String returns a random string of the given kind with length runes.
// For HTML, length bounds the whole string including the tags
func (g *Generator) String(kind Kind, length int) (string, error) {
	if length < 1 {
		return "", trace.BadParameter("string length must be >= 1, got %v", length)
	}
	switch kind {
	case Alpha:
		return g.fromSet(letters, length), nil
	case Alphanumeric:
		return g.fromSet(letters+digits, length), nil
	case Numeric:
		return g.fromSet(digits, length), nil
	case Latin1:
		return g.fromRange(0x00C0, 0x00FF, length, func(r rune) bool {
			return r != 0x00D7 && r != 0x00F7
		}), nil
	case UTF8:
		return g.utf8(length), nil
	case CJK:
		return g.fromRange(0x4E00, 0x9FCC, length, nil), nil
	case HTML:
		return g.html(length)
	}
	return "", trace.BadParameter("unsupported string kind %q", kind)
}

// MustString is like String but panics on invalid arguments
func (g *Generator) MustString(kind Kind, length int) string {
	s, err := g.String(kind, length)
	if err != nil {
		panic(err)
	}
	return s
}

// Email returns a random e-mail address
func (g *Generator) Email() string {
	return fmt.Sprintf("%v@%v.%v",
		g.fromSet(lowercase, 8), g.fromSet(lowercase, 8), tlds[g.intn(len(tlds))])
}

// IPAddr returns a random IPv4 address
func (g *Generator) IPAddr() string {
	return fmt.Sprintf("%v.%v.%v.%v", 1+g.intn(223), g.intn(256), g.intn(256), 1+g.intn(254))
}

// MAC returns a random MAC address formatted as six colon-separated octets
func (g *Generator) MAC() string {
	octets := make([]string, 6)
	for i := range octets {
		octets[i] = fmt.Sprintf("%02x", g.intn(256))
	}
	return strings.Join(octets, ":")
}

// URL returns a random http(s) URL
func (g *Generator) URL() string {
	scheme := "http"
	if g.Boolean() {
		scheme = "https"
	}
	return fmt.Sprintf("%v://%v.%v", scheme, g.fromSet(lowercase, 10), tlds[g.intn(len(tlds))])
}

// Integer returns a random integer in [min, max]
func (g *Generator) Integer(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.intn(max-min+1)
}

// Float returns a random float in [min, max)
func (g *Generator) Float(min, max float64) float64 {
	return min + g.float64()*(max-min)
}

// Boolean returns a random boolean
func (g *Generator) Boolean() bool {
	return g.intn(2) == 1
}

// Choice returns a random element of choices
func (g *Generator) Choice(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", trace.BadParameter("no choices to pick from")
	}
	return choices[g.intn(len(choices))], nil
}

func (g *Generator) fromSet(set string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = set[g.intn(len(set))]
	}
	return string(buf)
}

func (g *Generator) fromRange(lo, hi rune, length int, accept func(rune) bool) string {
	runes := make([]rune, 0, length)
	for len(runes) < length {
		r := lo + rune(g.intn(int(hi-lo)+1))
		if accept != nil && !accept(r) {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes)
}

// utf8 mixes letters, latin1 and CJK characters
func (g *Generator) utf8(length int) string {
	runes := make([]rune, 0, length)
	for len(runes) < length {
		var r rune
		switch g.intn(3) {
		case 0:
			r = rune(letters[g.intn(len(letters))])
		case 1:
			r = 0x00C0 + rune(g.intn(0x3F))
			if r == 0x00D7 || r == 0x00F7 {
				continue
			}
		default:
			r = 0x4E00 + rune(g.intn(0x9FCC-0x4E00))
		}
		if utf8.ValidRune(r) {
			runes = append(runes, r)
		}
	}
	return string(runes)
}

func (g *Generator) html(length int) (string, error) {
	var fit []string
	for _, tag := range htmlTags {
		if tagOverhead(tag) < length {
			fit = append(fit, tag)
		}
	}
	if len(fit) == 0 {
		return "", trace.BadParameter("html string needs length of at least %v, got %v", MinHTMLLength, length)
	}
	tag := fit[g.intn(len(fit))]
	return fmt.Sprintf("<%v>%v</%v>", tag, g.fromSet(letters, length-tagOverhead(tag)), tag), nil
}

func tagOverhead(tag string) int {
	return 2*len(tag) + len("<></>")
}
