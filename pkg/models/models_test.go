package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentPreservesInsertionOrder(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, 0, doc.Len())

	doc.Append(Record{IP: "10.0.0.2", Hostnames: []string{"b"}})
	doc.Append(Record{IP: "10.0.0.1", Hostnames: []string{"a", "aa"}})

	records := doc.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, "10.0.0.2", records[0].IP)
	assert.Equal(t, []string{"a", "aa"}, records[1].Hostnames)
}

func TestRecordsReturnsCopy(t *testing.T) {
	doc := NewDocument(Record{IP: "127.0.0.1", Hostnames: []string{"localhost"}})

	records := doc.Records()
	records[0] = Record{IP: "0.0.0.0"}

	assert.Equal(t, "127.0.0.1", doc.Records()[0].IP)
}

func TestDocumentEqual(t *testing.T) {
	a := NewDocument(
		Record{IP: "127.0.0.1", Hostnames: []string{"localhost"}},
		Record{IP: "::1", Hostnames: []string{"ip6-localhost", "ip6-loopback"}},
	)
	b := NewDocument(a.Records()...)
	assert.True(t, a.Equal(b))

	swapped := NewDocument(a.Records()[1], a.Records()[0])
	assert.False(t, a.Equal(swapped), "order is significant")

	reordered := NewDocument(
		Record{IP: "127.0.0.1", Hostnames: []string{"localhost"}},
		Record{IP: "::1", Hostnames: []string{"ip6-loopback", "ip6-localhost"}},
	)
	assert.False(t, a.Equal(reordered), "hostname order is significant")

	var nilDoc *Document
	assert.True(t, nilDoc.Equal(NewDocument()))
	assert.Equal(t, 0, nilDoc.Len())
	assert.Nil(t, nilDoc.Records())
}
