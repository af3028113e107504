// ===== pkg/models/models.go =====
package models

// Record represents one hosts file entry: an address and the names bound to it
type Record struct {
	IP        string   `json:"ip" yaml:"ip"`
	Hostnames []string `json:"hostnames" yaml:"hostnames"`
}

// Document is an ordered, append-only list of records
type Document struct {
	records []Record
}

// NewDocument creates a document holding the given records in order
func NewDocument(records ...Record) *Document {
	d := &Document{}
	for _, r := range records {
		d.Append(r)
	}
	return d
}

// Append adds a record at the end of the document
func (d *Document) Append(r Record) {
	d.records = append(d.records, r)
}

// Len returns the number of records
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns the records in insertion order
func (d *Document) Records() []Record {
	if d == nil {
		return nil
	}
	records := make([]Record, len(d.records))
	copy(records, d.records)
	return records
}

// Equal reports whether both documents hold the same records in the same order.
// A nil document equals an empty one.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := 0; i < d.Len(); i++ {
		if !d.records[i].Equal(other.records[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two records have the same IP and hostname list
func (r Record) Equal(other Record) bool {
	if r.IP != other.IP || len(r.Hostnames) != len(other.Hostnames) {
		return false
	}
	for i := range r.Hostnames {
		if r.Hostnames[i] != other.Hostnames[i] {
			return false
		}
	}
	return true
}
