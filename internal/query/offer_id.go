package query

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// OfferIDKind tags which form an offer id was given in.
type OfferIDKind int

const (
	OfferIDLiteral OfferIDKind = iota
	OfferIDInteger
	OfferIDUUID
)

func (k OfferIDKind) String() string {
	switch k {
	case OfferIDInteger:
		return "integer"
	case OfferIDUUID:
		return "uuid"
	default:
		return "literal"
	}
}

// OfferID is an offer identifier normalised to its stored form.
type OfferID struct {
	kind  OfferIDKind
	value string
}

// ParseOfferID canonicalises raw. Version 4 UUIDs, with or without hyphens and
// in any case, become lowercase hex without hyphens. Anything else is kept as
// given so integer ids and unexpected values still compare literally.
func ParseOfferID(raw string) OfferID {
	if parsed, err := uuid.Parse(raw); err == nil && parsed.Version() == 4 {
		return OfferID{kind: OfferIDUUID, value: strings.ReplaceAll(parsed.String(), "-", "")}
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return OfferID{kind: OfferIDInteger, value: raw}
	}
	return OfferID{kind: OfferIDLiteral, value: raw}
}

// Kind returns the tag.
func (id OfferID) Kind() OfferIDKind { return id.kind }

// String returns the stored form.
func (id OfferID) String() string { return id.value }
