// Package filter holds the stateless predicates the listing endpoints apply
// over entity collections. Everything here is pure and recomputed per
// request; at this data scale no indexing is needed.
package filter

import (
	"strings"

	"amsi_crm/internal/domain/entities"
)

// StockBucket groups products by how their level compares to the reorder
// threshold.
type StockBucket string

const (
	StockBucketAll StockBucket = "all"
	StockBucketLow StockBucket = "low"
	StockBucketOut StockBucket = "out"
)

func matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// CustomerMatches applies a case-insensitive substring search over the
// fields customers are looked up by.
func CustomerMatches(c entities.Customer, term string) bool {
	return matches(term, c.ID, c.Name, c.Email, c.Address)
}

func LeadMatches(l entities.Lead, term string, status entities.LeadStatus) bool {
	if status != "" && l.Status != status {
		return false
	}
	return matches(term, l.ID, l.CustomerName, l.Address, l.Source)
}

func TicketMatches(t entities.Ticket, term string, status entities.TicketStatus) bool {
	if status != "" && t.Status != status {
		return false
	}
	return matches(term, t.ID, t.Title, t.Description, t.CustomerID)
}

// ProductMatches applies search term, category filter and stock bucketing.
func ProductMatches(p entities.Product, term, category string, bucket StockBucket) bool {
	if category != "" && !strings.EqualFold(p.Category, category) {
		return false
	}
	switch bucket {
	case StockBucketOut:
		if p.StockLevel > 0 {
			return false
		}
	case StockBucketLow:
		if p.StockLevel <= 0 || p.StockLevel > p.ReorderLevel {
			return false
		}
	}
	return matches(term, p.ID, p.SKU, p.Name)
}
