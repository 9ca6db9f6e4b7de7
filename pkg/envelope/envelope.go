// Package envelope frames tagged payloads with promoter, terminator and
// marker sequences around a 2-bit nucleotide body.
package envelope

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aniviza/dnac/pkg/dna"
)

// Wire framing defaults. Existing .dna artifacts depend on these exact
// values; alternate framing goes through a named Scheme, never by editing
// these.
const (
	DefaultPromoter   = "ATGCATGC"
	DefaultTerminator = "TTAATTAA"
	DefaultMarker     = "GGCCGGCC"
)

const (
	stringTag = "STRING:"
	fileTag   = "FILE:"
)

var (
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrUnrecognizedTag   = errors.New("unrecognized payload tag")
	ErrEmptyField        = errors.New("empty filename or content")
	ErrInvalidFilename   = errors.New("invalid filename")
	ErrPayloadMismatch   = errors.New("payload kind mismatch")
	ErrInvalidScheme     = errors.New("invalid framing scheme")
)

// Scheme holds the three framing sequences. Injected into the codec so
// alternate framings are testable and configurable without rebuilds.
type Scheme struct {
	Promoter   string `yaml:"promoter"`
	Terminator string `yaml:"terminator"`
	Marker     string `yaml:"marker"`
}

// DefaultScheme returns the standard wire framing.
func DefaultScheme() Scheme {
	return Scheme{
		Promoter:   DefaultPromoter,
		Terminator: DefaultTerminator,
		Marker:     DefaultMarker,
	}
}

// Validate requires all three sequences to be non-empty and composed only
// of A, C, G and T.
func (s Scheme) Validate() error {
	for _, seq := range []string{s.Promoter, s.Terminator, s.Marker} {
		if seq == "" {
			return errors.Wrap(ErrInvalidScheme, "framing sequences must not be empty")
		}
		for i := 0; i < len(seq); i++ {
			switch seq[i] {
			case 'A', 'C', 'G', 'T':
			default:
				return errors.Wrapf(ErrInvalidScheme, "symbol %q in framing sequence %q", seq[i], seq)
			}
		}
	}
	return nil
}

// PayloadKind discriminates the payload union.
type PayloadKind int

const (
	KindString PayloadKind = iota + 1
	KindFile
)

func (k PayloadKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// Payload is the decoded content of an envelope. Name is set for KindFile
// only. The tag is parsed exactly once, here; callers never re-sniff
// prefixes.
type Payload struct {
	Kind    PayloadKind
	Name    string
	Content []byte
}

// Codec wraps and unwraps payloads for one framing scheme. Stateless and
// safe for concurrent use.
type Codec struct {
	scheme Scheme
}

// New builds a codec after validating the scheme.
func New(scheme Scheme) (*Codec, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	return &Codec{scheme: scheme}, nil
}

// Scheme returns the framing the codec was built with.
func (c *Codec) Scheme() Scheme { return c.scheme }

// EncodeString wraps msg as a STRING payload. Total function; the decoded
// message may carry trailing space padding (see dna.PaddedLen).
func (c *Codec) EncodeString(msg []byte) []byte {
	payload := make([]byte, 0, len(stringTag)+len(msg))
	payload = append(payload, stringTag...)
	payload = append(payload, msg...)
	return c.wrap(payload)
}

// EncodeFile wraps content as a FILE payload carrying name. Names holding a
// colon are rejected up front: the header delimiter is a colon, and an
// ambiguous name could not be recovered on decode.
func (c *Codec) EncodeFile(name string, content []byte) ([]byte, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidFilename, "filename must not be empty")
	}
	if strings.ContainsRune(name, ':') {
		return nil, errors.Wrapf(ErrInvalidFilename, "filename %q contains the header delimiter ':'", name)
	}
	payload := make([]byte, 0, len(fileTag)+len(name)+1+len(content))
	payload = append(payload, fileTag...)
	payload = append(payload, name...)
	payload = append(payload, ':')
	payload = append(payload, content...)
	return c.wrap(payload), nil
}

func (c *Codec) wrap(payload []byte) []byte {
	body := dna.Encode(payload)
	seq := make([]byte, 0, len(c.scheme.Promoter)+len(body)+len(c.scheme.Terminator)+len(c.scheme.Marker))
	seq = append(seq, c.scheme.Promoter...)
	seq = append(seq, body...)
	seq = append(seq, c.scheme.Terminator...)
	seq = append(seq, c.scheme.Marker...)
	return seq
}

// Decode validates and strips the framing, transcodes the body and parses
// the payload tag. All-or-nothing: no partial results on failure.
func (c *Codec) Decode(seq []byte) (Payload, error) {
	body, err := c.unwrap(seq)
	if err != nil {
		return Payload{}, err
	}
	raw, err := dna.Decode(body)
	if err != nil {
		return Payload{}, err
	}
	switch {
	case bytes.HasPrefix(raw, []byte(stringTag)):
		return Payload{Kind: KindString, Content: raw[len(stringTag):]}, nil
	case bytes.HasPrefix(raw, []byte(fileTag)):
		return parseFilePayload(raw[len(fileTag):])
	default:
		return Payload{}, errors.Wrapf(ErrUnrecognizedTag, "payload starts with %q", preview(raw))
	}
}

// DecodeString decodes seq and requires a STRING payload.
func (c *Codec) DecodeString(seq []byte) ([]byte, error) {
	p, err := c.Decode(seq)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindString {
		return nil, errors.Wrapf(ErrPayloadMismatch, "expected a string payload, got %s", p.Kind)
	}
	return p.Content, nil
}

// DecodeFile decodes seq and requires a FILE payload.
func (c *Codec) DecodeFile(seq []byte) (string, []byte, error) {
	p, err := c.Decode(seq)
	if err != nil {
		return "", nil, err
	}
	if p.Kind != KindFile {
		return "", nil, errors.Wrapf(ErrPayloadMismatch, "expected a file payload, got %s", p.Kind)
	}
	return p.Name, p.Content, nil
}

func (c *Codec) unwrap(seq []byte) ([]byte, error) {
	prefix := []byte(c.scheme.Promoter)
	suffix := []byte(c.scheme.Terminator + c.scheme.Marker)
	if len(seq) < len(prefix)+len(suffix) ||
		!bytes.HasPrefix(seq, prefix) ||
		!bytes.HasSuffix(seq, suffix) {
		return nil, errors.Wrap(ErrMalformedEnvelope, "missing promoter or terminator+marker framing")
	}
	return seq[len(prefix) : len(seq)-len(suffix)], nil
}

// parseFilePayload splits "name:content". The filename runs up to the first
// colon after the tag; everything after that colon is content.
func parseFilePayload(rest []byte) (Payload, error) {
	sep := bytes.IndexByte(rest, ':')
	if sep < 0 {
		return Payload{}, errors.Wrap(ErrEmptyField, "file header has no filename delimiter")
	}
	name, content := rest[:sep], rest[sep+1:]
	if len(name) == 0 || len(content) == 0 {
		return Payload{}, errors.Wrap(ErrEmptyField, "file payload needs a filename and content")
	}
	return Payload{Kind: KindFile, Name: string(name), Content: content}, nil
}

func preview(raw []byte) []byte {
	if len(raw) > 16 {
		return raw[:16]
	}
	return raw
}
