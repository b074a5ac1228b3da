package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"ijuruhub/pkg/model"
)

// ManualReferencePrefix marks walk-in bookings recorded by staff.
const ManualReferencePrefix = "MN"

const referenceSuffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const referenceSuffixLength = 5

var referencePrefixes = map[string]string{
	model.SpaceTypeHotDesk:       "HD",
	model.SpaceTypeDedicatedDesk: "DD",
	model.SpaceTypePrivateOffice: "PO",
	model.SpaceTypeMeetingRoom:   "MR",
}

// NewBookingReference builds a human-readable reference like
// HD-1724830000000-X7K2Q. Uniqueness is enforced by the storage index; on a
// collision the caller regenerates, which draws a fresh random suffix.
func NewBookingReference(spaceType string) string {
	prefix, ok := referencePrefixes[spaceType]
	if !ok {
		prefix = "BK"
	}
	return buildReference(prefix)
}

// NewManualReference builds a reference for staff-recorded bookings.
func NewManualReference() string {
	return buildReference(ManualReferencePrefix)
}

func buildReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randomSuffix(referenceSuffixLength))
}

func randomSuffix(n int) string {
	max := big.NewInt(int64(len(referenceSuffixCharset)))
	suffix := make([]byte, n)
	for i := range suffix {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to a timestamp-derived character.
			suffix[i] = referenceSuffixCharset[time.Now().UnixNano()%int64(len(referenceSuffixCharset))]
			continue
		}
		suffix[i] = referenceSuffixCharset[idx.Int64()]
	}
	return string(suffix)
}
