package expander

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// String returns a pointer to s, for setting optional filter fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for setting optional filter fields.
func Int(i int) *int { return &i }

// Bool returns a pointer to b, for setting optional filter fields.
func Bool(b bool) *bool { return &b }

// Pagination is the cursor block of a page envelope. Next is an absolute URL
// locating the following page, or nil when the result set is exhausted.
type Pagination struct {
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

// Meta carries the server-reported result set size. The events endpoint omits
// it.
type Meta struct {
	TotalCount int `json:"totalCount"`
}

// Page is one page envelope of a collection response. Records are kept as raw
// JSON: their schema is owned by the API and the client treats them as opaque.
type Page struct {
	Data       []json.RawMessage `json:"data"`
	Pagination Pagination        `json:"pagination"`
	Meta       *Meta             `json:"meta,omitempty"`

	// query holds the parameters re-applied on every page request.
	query url.Values
}

// HasNext reports whether the server advertised a further page.
func (p *Page) HasNext() bool {
	return p.Pagination.Next != nil && *p.Pagination.Next != ""
}

// NextURL returns the absolute URL of the next page, or "" when terminal.
func (p *Page) NextURL() string {
	if !p.HasNext() {
		return ""
	}
	return *p.Pagination.Next
}

// TotalCount returns the server-reported total and whether one was present.
func (p *Page) TotalCount() (int, bool) {
	if p.Meta == nil {
		return 0, false
	}
	return p.Meta.TotalCount, true
}

// setString adds a string parameter when the field was supplied.
func setString(v url.Values, key string, s *string) {
	if s != nil {
		v.Set(key, *s)
	}
}

// setInt adds an integer parameter when the field was supplied.
func setInt(v url.Values, key string, i *int) {
	if i != nil {
		v.Set(key, strconv.Itoa(*i))
	}
}

// setBool adds a boolean parameter when the field was supplied.
func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}

// CloudAssetFilter defines query criteria for the cloud assets collection.
// Nil fields are omitted from the request. Values are passed through without
// local syntax validation.
type CloudAssetFilter struct {
	// TenancyType filters by tenancy type: single-tenant or multi-tenant.
	TenancyType *string

	// AccountIntegration filters by provider account integration IDs.
	AccountIntegration *string

	// Region filters by cloud regions.
	Region *string

	// Provider is a comma-separated provider list, e.g.
	// "Amazon Web Services,Microsoft Azure".
	Provider *string

	// BusinessUnit is a comma-separated list of business unit IDs. Cannot be
	// combined with BusinessUnitName.
	BusinessUnit *string

	// BusinessUnitName is a comma-separated list of business unit names.
	// Cannot be combined with BusinessUnit.
	BusinessUnitName *string

	// Domain matches a domain exactly.
	Domain *string

	// DomainSearch matches a domain by substring.
	DomainSearch *string

	// Origin filters by asset origin: expanse-identified or
	// cloud-account-integration.
	Origin *string

	// Inet searches by single IP, dashed range, CIDR, partial CIDR or
	// wildcard.
	Inet *string

	// Limit is the page size.
	Limit *int

	// Offset is the pagination offset.
	Offset *int

	// Sort orders results, e.g. "ip", "-lastSeen", "provider.name".
	Sort *string
}

// Values maps the filter onto the vendor's query parameter names, containing
// exactly the keys whose field was supplied.
func (f *CloudAssetFilter) Values() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	setString(v, "filter[tenancy-type]", f.TenancyType)
	setString(v, "filter[account-integration]", f.AccountIntegration)
	setString(v, "filter[region]", f.Region)
	setString(v, "filter[provider]", f.Provider)
	setString(v, "filter[business-unit]", f.BusinessUnit)
	setString(v, "filter[business-unit-name]", f.BusinessUnitName)
	setString(v, "filter[domain]", f.Domain)
	setString(v, "filter[domain-search]", f.DomainSearch)
	setString(v, "filter[origin]", f.Origin)
	setString(v, "filter[inet]", f.Inet)
	setInt(v, "page[limit]", f.Limit)
	setInt(v, "page[offset]", f.Offset)
	setString(v, "sort", f.Sort)
	return v
}

// IPRangeFilter defines query criteria for the on-prem IP range collection.
type IPRangeFilter struct {
	// Limit is the page size (default 100, max 10,000).
	Limit *int

	// Offset is the pagination offset (default 0).
	Offset *int

	// Sort is a comma-separated field list; prefix a field with - for
	// descending order.
	Sort *string

	// BusinessUnits is a comma-separated list of business unit IDs. Cannot be
	// combined with BusinessUnitNames.
	BusinessUnits *string

	// BusinessUnitNames is a comma-separated list of business unit names.
	// Cannot be combined with BusinessUnits.
	BusinessUnitNames *string

	// Inet returns ranges whose [startAddress, endAddress] overlap the given
	// IP or CIDR expression.
	Inet *string

	// Tags is a comma-separated list of tag IDs. Cannot be combined with
	// TagNames.
	Tags *string

	// TagNames is a comma-separated list of tag names. Cannot be combined
	// with Tags.
	TagNames *string

	// Include adds serialized detail sections: annotations, severityCounts,
	// attributionReasons, relatedRegistrationInformation,
	// locationInformation.
	Include *string
}

// Values maps the filter onto the vendor's query parameter names.
func (f *IPRangeFilter) Values() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	setInt(v, "limit", f.Limit)
	setInt(v, "offset", f.Offset)
	setString(v, "sort", f.Sort)
	setString(v, "business-units", f.BusinessUnits)
	setString(v, "business-unit-names", f.BusinessUnitNames)
	setString(v, "inet", f.Inet)
	setString(v, "tags", f.Tags)
	setString(v, "tag-names", f.TagNames)
	setString(v, "include", f.Include)
	return v
}

// ExposureFilter defines query criteria for the exposures collection.
type ExposureFilter struct {
	// Accept requests CSV output when set to text/csv. The vendor treats this
	// as a query parameter, not a header.
	Accept *string

	// Limit is the page size (default 100, max 10,000). Ignored for CSV.
	Limit *int

	// Offset is the pagination offset (default 0). Ignored for CSV.
	Offset *int

	// ExposureType filters by exposure types as listed by
	// /configurations/exposures.
	ExposureType *string

	// Inet searches by single IP, dashed range, CIDR, partial CIDR or
	// wildcard.
	Inet *string

	// Content matches exposure contents against the given query.
	Content *string

	// ActivityStatus filters by activity state: active or inactive.
	ActivityStatus *string

	// LastEventTime returns exposures last scanned or last disappeared after
	// the given timestamp.
	LastEventTime *string

	// LastEventWindow returns exposures last scanned after the start of the
	// given window. Takes precedence over LastEventTime.
	LastEventWindow *string

	// Severity is a comma-separated severity list.
	Severity *string

	// EventType filters by event type: appearance, reappearance,
	// disappearance.
	EventType *string

	// Provider is a comma-separated provider list. Requires Cloud to be true.
	Provider *string

	// Cloud selects cloud IP space when true, on-prem space otherwise.
	// Deprecated upstream but still honored.
	Cloud *bool

	// Tag is a comma-separated tag list with no spaces after commas.
	Tag *string

	// BusinessUnit is a comma-separated list of business unit IDs.
	BusinessUnit *string

	// PortNumber is a comma-separated port number list.
	PortNumber *string

	// Sort is a comma-separated field list; prefix a field with - for
	// descending order.
	Sort *string
}

// Values maps the filter onto the vendor's query parameter names.
func (f *ExposureFilter) Values() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	setString(v, "Accept", f.Accept)
	setInt(v, "limit", f.Limit)
	setInt(v, "offset", f.Offset)
	setString(v, "exposureType", f.ExposureType)
	setString(v, "inet", f.Inet)
	setString(v, "content", f.Content)
	setString(v, "activityStatus", f.ActivityStatus)
	setString(v, "lastEventTime", f.LastEventTime)
	setString(v, "lastEventWindow", f.LastEventWindow)
	setString(v, "severity", f.Severity)
	setString(v, "eventType", f.EventType)
	setString(v, "provider", f.Provider)
	setBool(v, "cloud", f.Cloud)
	setString(v, "tag", f.Tag)
	setString(v, "businessUnit", f.BusinessUnit)
	setString(v, "portNumber", f.PortNumber)
	setString(v, "sort", f.Sort)
	return v
}

// EventFilter defines query criteria for the events collection. The date
// window is not part of the filter; List and Pages take it as explicit
// arguments.
type EventFilter struct {
	// BusinessUnit is a comma-separated list of business unit IDs.
	BusinessUnit *string

	// EventType is a comma-separated list of event types, e.g.
	// ON_PREM_EXPOSURE_APPEARANCE.
	EventType *string

	// Limit is the page size (default and max 10,000).
	Limit *int

	// PageToken selects a specific page.
	PageToken *string
}

// Values maps the filter onto the vendor's query parameter names.
func (f *EventFilter) Values() url.Values {
	v := url.Values{}
	if f == nil {
		return v
	}
	setString(v, "businessUnit", f.BusinessUnit)
	setString(v, "eventType", f.EventType)
	setInt(v, "limit", f.Limit)
	setString(v, "pageToken", f.PageToken)
	return v
}
