package domain

import "strings"

// Unknown is the sentinel used whenever a lookup or a resource id parse
// cannot produce a real value. Degrading to it is a hard contract of the
// pipeline; raw-data quality problems must never abort a run.
const Unknown = "Unknown"

// ParseResourceID extracts the subscription id and resource group from an ARM
// resource id by position: /subscriptions/<sub>/resourceGroups/<rg>/... Both
// values degrade to Unknown when the id is too short or malformed.
func ParseResourceID(id string) (subscriptionID, resourceGroup string) {
	subscriptionID, resourceGroup = Unknown, Unknown

	segments := strings.Split(id, "/")
	if len(segments) > 2 && segments[2] != "" {
		subscriptionID = segments[2]
	}
	if len(segments) > 4 && segments[4] != "" {
		resourceGroup = segments[4]
	}
	return subscriptionID, resourceGroup
}

// FirstNonEmpty returns the first non-empty value, or Unknown when every
// candidate is empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return Unknown
}
