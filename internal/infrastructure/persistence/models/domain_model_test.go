//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tofunames/tofunames/internal/domain/domains"
)

func TestDomainModel_NameserverSlots(t *testing.T) {
	domain := &domains.Domain{
		ID:          1,
		OwnerID:     1,
		ContactID:   2,
		Name:        "tofunames.com",
		Nameservers: []string{"ns1.dnsimple.com", "ns2.dnsimple-edge.net"},
		Pending:     true,
	}

	model := &DomainModel{}
	model.FromDomain(domain)

	assert.Equal(t, "domains", model.TableName())
	assert.Equal(t, "ns1.dnsimple.com", model.Nameserver0)
	assert.Equal(t, "ns2.dnsimple-edge.net", model.Nameserver1)
	assert.Empty(t, model.Nameserver2)
	assert.Empty(t, model.Nameserver3)

	back := model.ToDomain()
	assert.Equal(t, domain.Nameservers, back.Nameservers)
	assert.True(t, back.Pending)
}

func TestDomainModel_NoNameservers(t *testing.T) {
	model := &DomainModel{Name: "example.com"}
	assert.Nil(t, model.ToDomain().Nameservers)
}

func TestDomainModel_ExtraNameserversDropped(t *testing.T) {
	model := &DomainModel{}
	model.FromDomain(&domains.Domain{Nameservers: []string{"a.ex", "b.ex", "c.ex", "d.ex", "e.ex"}})
	assert.Equal(t, "d.ex", model.Nameserver3)
	assert.Len(t, model.ToDomain().Nameservers, 4)
}
