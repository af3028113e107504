// ===== pkg/hosts/parser.go =====
package hosts

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"hostsfile/pkg/models"
	"hostsfile/pkg/utils"
)

var rgxHostname = regexp.MustCompile(`^[A-Za-z](?:[A-Za-z0-9.-]*[A-Za-z0-9])?$`)

// IsHostname reports whether s has the shape of a hosts file hostname:
// an ASCII letter, then letters, digits, dots or hyphens, not ending in a dot or hyphen.
func IsHostname(s string) bool {
	return rgxHostname.MatchString(s)
}

// Parser handles hosts file parsing. The zero value is ready to use and
// safe for concurrent use.
type Parser struct {
	// SkipBadEncoding drops lines that are not valid UTF-8 instead of
	// failing the parse with KindBadEncoding.
	SkipBadEncoding bool
}

// NewParser creates a new hosts parser
func NewParser() *Parser {
	return &Parser{}
}

var defaultParser = NewParser()

// Parse parses hosts file content using the default parser
func Parse(buf []byte) (*models.Document, error) {
	return defaultParser.Parse(buf)
}

// ParseRecord converts a single candidate line into a record. Tokens after
// the first one that is not hostname-shaped are dropped.
func ParseRecord(line string) (models.Record, error) {
	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) == 0 {
		return models.Record{}, &Error{Kind: KindMalformedIP}
	}

	ip := fields[0]
	if _, ok := utils.ParseIP(ip); !ok {
		return models.Record{}, &Error{Kind: KindMalformedIP, Token: ip}
	}

	var hostnames []string
	for _, field := range fields[1:] {
		if !IsHostname(field) {
			break
		}
		hostnames = append(hostnames, field)
	}

	if len(hostnames) == 0 {
		err := &Error{Kind: KindMalformedHostname}
		if len(fields) > 1 {
			err.Token = fields[1]
		}
		return models.Record{}, err
	}

	return models.Record{IP: ip, Hostnames: hostnames}, nil
}

// Parse parses hosts file content. The first bad line aborts the parse.
func (p *Parser) Parse(buf []byte) (*models.Document, error) {
	doc := models.NewDocument()

	for i, raw := range splitLines(buf) {
		record, ok, err := p.parseLine(i+1, raw)
		if err != nil {
			return nil, err
		}
		if ok {
			doc.Append(record)
		}
	}

	return doc, nil
}

// parseLine applies the encoding policy, classification and record parsing
// to one physical line. ok is false for skipped lines.
func (p *Parser) parseLine(n int, raw []byte) (record models.Record, ok bool, err error) {
	if !utf8.Valid(raw) {
		if p.SkipBadEncoding {
			return models.Record{}, false, nil
		}
		return models.Record{}, false, &Error{Kind: KindBadEncoding, Line: n}
	}

	line, candidate := classify(raw)
	if !candidate {
		return models.Record{}, false, nil
	}

	record, err = ParseRecord(line)
	if err != nil {
		return models.Record{}, false, atLine(err, n)
	}

	return record, true, nil
}
