// ===== pkg/hosts/writer.go =====
package hosts

import (
	"bufio"
	"io"
	"strings"

	"hostsfile/pkg/models"
)

type stringWriter interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

// Serialize renders doc as canonical hosts file text, one
// "IP HOST1 HOST2..." line per record. An empty document renders as "".
func Serialize(doc *models.Document) string {
	var b strings.Builder
	writeRecords(&b, doc)
	return b.String()
}

// Write writes doc in canonical form to w
func Write(w io.Writer, doc *models.Document) error {
	bufWr := bufio.NewWriter(w)
	writeRecords(bufWr, doc)
	return bufWr.Flush()
}

// writeRecords ignores write errors; bufio.Writer keeps the first one for Flush
// and strings.Builder never fails.
func writeRecords(w stringWriter, doc *models.Document) {
	for _, record := range doc.Records() {
		w.WriteString(record.IP)
		for _, hostname := range record.Hostnames {
			w.WriteByte(' ')
			w.WriteString(hostname)
		}
		w.WriteByte('\n')
	}
}
