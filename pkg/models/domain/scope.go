package domain

import "strings"

// TagFilter is one tag predicate of the form key == value.
type TagFilter struct {
	Key   string
	Value string
}

// Matches reports whether the given tag set satisfies the filter. Keys are
// compared case-insensitively, values exactly.
func (t TagFilter) Matches(tags map[string]string) bool {
	for k, v := range tags {
		if strings.EqualFold(k, t.Key) && v == t.Value {
			return true
		}
	}
	return false
}

// Scope describes what a run assesses. TenantID is mandatory; the id lists
// narrow the tenant down and Tags narrow the record sets further.
type Scope struct {
	TenantID         string
	SubscriptionIDs  []string
	ResourceGroupIDs []string
	ResourceIDs      []string
	Tags             []TagFilter
}

// HasTags reports whether tag filtering applies to this scope.
func (s Scope) HasTags() bool {
	return len(s.Tags) > 0
}

// Subscriptions returns the bare subscription ids referenced anywhere in the
// scope, deduplicated, in first-seen order.
func (s Scope) Subscriptions() []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(id string) {
		id = strings.ToLower(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range s.SubscriptionIDs {
		add(strings.TrimPrefix(strings.ToLower(id), "/subscriptions/"))
	}
	for _, id := range s.ResourceGroupIDs {
		sub, _ := ParseResourceID(id)
		if sub != Unknown {
			add(sub)
		}
	}
	for _, id := range s.ResourceIDs {
		sub, _ := ParseResourceID(id)
		if sub != Unknown {
			add(sub)
		}
	}
	return out
}

// Covers reports whether the given resource id falls inside the scope. An
// empty scope (no subscription, resource group, or resource ids) covers
// everything; otherwise the id must live under one of the listed ids.
func (s Scope) Covers(resourceID string) bool {
	if len(s.SubscriptionIDs) == 0 && len(s.ResourceGroupIDs) == 0 && len(s.ResourceIDs) == 0 {
		return true
	}

	id := strings.ToLower(resourceID)
	for _, rid := range s.ResourceIDs {
		if id == strings.ToLower(rid) {
			return true
		}
	}
	for _, rg := range s.ResourceGroupIDs {
		if strings.HasPrefix(id, strings.ToLower(rg)+"/") || id == strings.ToLower(rg) {
			return true
		}
	}
	for _, sub := range s.SubscriptionIDs {
		prefix := strings.ToLower(sub)
		if !strings.HasPrefix(prefix, "/subscriptions/") {
			prefix = "/subscriptions/" + prefix
		}
		if strings.HasPrefix(id, prefix+"/") || id == prefix {
			return true
		}
	}
	return false
}
