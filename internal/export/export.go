// ===== internal/export/export.go =====
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/miekg/dns"
	"gopkg.in/yaml.v3"

	"hostsfile/pkg/hosts"
	"hostsfile/pkg/models"
	"hostsfile/pkg/utils"
)

// ErrUnknownFormat is returned by Write for a format it cannot render
var ErrUnknownFormat = errors.New("unknown output format")

// Write renders doc to w in the named format: hosts, json, yaml or zone
func Write(w io.Writer, doc *models.Document, format string, ttl uint32) error {
	switch format {
	case "hosts", "":
		return hosts.Write(w, doc)
	case "json":
		return WriteJSON(w, doc)
	case "yaml":
		return WriteYAML(w, doc)
	case "zone":
		return WriteZone(w, doc, ttl)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes the records wrapped in a {"data": [...]} envelope
func WriteJSON(w io.Writer, doc *models.Document) error {
	response := map[string]interface{}{"data": records(doc)}
	return json.NewEncoder(w).Encode(response)
}

// WriteYAML writes the records as a YAML sequence
func WriteYAML(w io.Writer, doc *models.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(doc)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// Zone converts doc into one A or AAAA record per hostname, in document order
func Zone(doc *models.Document, ttl uint32) ([]dns.RR, error) {
	var rrs []dns.RR

	for _, record := range doc.Records() {
		ip, ok := utils.ParseIP(record.IP)
		if !ok {
			return nil, fmt.Errorf("invalid IP address: %s", record.IP)
		}

		for _, hostname := range record.Hostnames {
			name := dns.Fqdn(hostname)

			if utils.IsIPv4(ip) {
				rrs = append(rrs, &dns.A{
					Hdr: dns.RR_Header{
						Name:   name,
						Rrtype: dns.TypeA,
						Class:  dns.ClassINET,
						Ttl:    ttl,
					},
					A: ip.To4(),
				})
			} else {
				rrs = append(rrs, &dns.AAAA{
					Hdr: dns.RR_Header{
						Name:   name,
						Rrtype: dns.TypeAAAA,
						Class:  dns.ClassINET,
						Ttl:    ttl,
					},
					AAAA: ip,
				})
			}
		}
	}

	return rrs, nil
}

// WriteZone writes doc as master file lines
func WriteZone(w io.Writer, doc *models.Document, ttl uint32) error {
	rrs, err := Zone(doc, ttl)
	if err != nil {
		return err
	}

	bufWr := bufio.NewWriter(w)
	for _, rr := range rrs {
		bufWr.WriteString(rr.String())
		bufWr.WriteString("\n")
	}
	return bufWr.Flush()
}

// records never returns nil so empty documents encode as [] rather than null
func records(doc *models.Document) []models.Record {
	rs := doc.Records()
	if rs == nil {
		rs = []models.Record{}
	}
	return rs
}
