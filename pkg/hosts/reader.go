// ===== pkg/hosts/reader.go =====
package hosts

import (
	"bufio"
	"errors"
	"io"
	"os"

	"hostsfile/pkg/models"
)

// ParseFile reads and parses the hosts file at path using the default parser
func ParseFile(path string) ([]models.Record, error) {
	return defaultParser.ParseFile(path)
}

// LoadFile is like ParseFile but returns a Document
func LoadFile(path string) (*models.Document, error) {
	return defaultParser.LoadFile(path)
}

// ParseReader parses hosts file content read line by line from r
func ParseReader(r io.Reader) (*models.Document, error) {
	return defaultParser.ParseReader(r)
}

// ParseFile reads and parses the hosts file at path
func (p *Parser) ParseFile(path string) ([]models.Record, error) {
	doc, err := p.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Records(), nil
}

// LoadFile reads and parses the hosts file at path into a Document
func (p *Parser) LoadFile(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindOpenFailed, Path: path, Err: err}
	}
	defer file.Close()

	doc, err := p.ParseReader(file)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && perr.Kind == KindReadFailed {
			perr.Path = path
		}
		return nil, err
	}

	return doc, nil
}

// ParseReader parses hosts file content read line by line from r.
// Lines are not length limited.
func (p *Parser) ParseReader(r io.Reader) (*models.Document, error) {
	doc := models.NewDocument()
	bufRd := bufio.NewReader(r)

	for n := 1; ; n++ {
		raw, errRead := bufRd.ReadBytes('\n')
		if errRead != nil && errRead != io.EOF {
			return nil, &Error{Kind: KindReadFailed, Line: n, Err: errRead}
		}

		if len(raw) > 0 {
			if raw[len(raw)-1] == '\n' {
				raw = raw[:len(raw)-1]
			}
			record, ok, err := p.parseLine(n, raw)
			if err != nil {
				return nil, err
			}
			if ok {
				doc.Append(record)
			}
		}

		if errRead == io.EOF {
			break
		}
	}

	return doc, nil
}
