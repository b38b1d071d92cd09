// Package services contains stateless domain services for the inventory
// bounded context: identifier generation and referential integrity
// validation. They operate on domain types plus the repository interfaces
// the domain layer owns.
package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultCategoryPrefix is used in SKUs when the item has no category.
const DefaultCategoryPrefix = "ITM"

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSKU builds a human-readable SKU:
//
//	{SHOP_CODE}-{CATEGORY_PREFIX}-{TIMESTAMP_TAIL}-{RANDOM4}
//
// SHOP_CODE and CATEGORY_PREFIX are the first three letters of the org and
// category names (uppercased, non-letters replaced with X); TIMESTAMP_TAIL
// is the last six digits of the current Unix millisecond timestamp; RANDOM4
// is four characters from [A-Z0-9]. The format favors readability over
// collision-proof entropy, so callers must verify tenant-scoped uniqueness
// after generation and regenerate on collision.
func GenerateSKU(orgName, categoryName string) string {
	prefix := DefaultCategoryPrefix
	if strings.TrimSpace(categoryName) != "" {
		prefix = codePrefix(categoryName)
	}
	return fmt.Sprintf("%s-%s-%06d-%s",
		codePrefix(orgName),
		prefix,
		time.Now().UnixMilli()%1_000_000,
		randomAlnum(4),
	)
}

// GenerateBarcode builds a scan-ready barcode:
//
//	{TENANT_ID_HEAD6}-{FULL_TIMESTAMP}-{SEQUENCE4}
//
// TENANT_ID_HEAD6 is the first six hex characters of the tenant id with
// separators stripped; SEQUENCE4 is the tenant's live item count plus one,
// zero-padded to four digits. Time- and count-derived, so the same
// verify-or-regenerate rule as GenerateSKU applies.
func GenerateBarcode(orgID uuid.UUID, liveItemCount int64) string {
	head := strings.ReplaceAll(orgID.String(), "-", "")[:6]
	return fmt.Sprintf("%s-%d-%04d", head, time.Now().UnixMilli(), liveItemCount+1)
}

// codePrefix derives a three-letter uppercase code from a display name.
// Anything outside A-Za-z becomes X so the result always matches [A-Z]{3};
// names shorter than three runes are padded with X.
func codePrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if b.Len() == 3 {
			break
		}
		if r >= 'a' && r <= 'z' {
			r = unicode.ToUpper(r)
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		} else {
			b.WriteByte('X')
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}
	return b.String()
}

func randomAlnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = skuAlphabet[rand.IntN(len(skuAlphabet))]
	}
	return string(b)
}
