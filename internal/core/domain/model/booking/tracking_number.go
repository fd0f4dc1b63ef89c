package booking

import (
	"fmt"
	"regexp"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

const trackingPrefix = "PX-"

var trackingPattern = regexp.MustCompile(`^PX-[0-9A-F]{10}$`)

// TrackingNumber is the public parcel reference, e.g. "PX-3FA85F6457".
type TrackingNumber string

// NewTrackingNumber draws ten hex digits from the random part of a v4 UUID.
func NewTrackingNumber() TrackingNumber {
	return TrackingNumber(trackingPrefix + kernel.NewUUID().Hex()[:10])
}

func ParseTrackingNumber(s string) (TrackingNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !trackingPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("tracking number", fmt.Errorf("%q does not match PX-XXXXXXXXXX", s))
	}
	return TrackingNumber(s), nil
}

func (n TrackingNumber) String() string {
	return string(n)
}
